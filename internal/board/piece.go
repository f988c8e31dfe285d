package board

// Side identifies a player, or nobody.
type Side uint8

const (
	White Side = iota
	Black
	NoSide Side = 2
)

// SideOf maps the isWhite convention used by squares onto a Side.
func SideOf(isWhite bool) Side {
	if isWhite {
		return White
	}
	return Black
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s >= NoSide {
		return NoSide
	}
	return s ^ 1
}

// IsWhite reports whether s is White.
func (s Side) IsWhite() bool {
	return s == White
}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoSide"
	}
}

// PieceType represents the type of a piece standing on a square.
type PieceType uint8

const (
	King PieceType = iota
	Queen
	Rook
	Knight
	Bishop
	Pawn
	NoPieceType PieceType = 6
)

// PieceTypes lists every real piece type in declaration order.
var PieceTypes = [...]PieceType{King, Queen, Rook, Knight, Bishop, Pawn}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}

// Char returns the lowercase letter for the piece type.
func (pt PieceType) Char() byte {
	chars := []byte{'k', 'q', 'r', 'n', 'b', 'p', '.'}
	if pt > NoPieceType {
		return '.'
	}
	return chars[pt]
}

// IsSlider reports whether the piece moves along rays.
func (pt PieceType) IsSlider() bool {
	return pt == Queen || pt == Rook || pt == Bishop
}

// PieceTypeFromChar converts a piece letter (either case) to a PieceType.
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'k', 'K':
		return King
	case 'q', 'Q':
		return Queen
	case 'r', 'R':
		return Rook
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'p', 'P':
		return Pawn
	default:
		return NoPieceType
	}
}

// Terrain is the static feature of a square.
type Terrain uint8

const (
	TerrainNone Terrain = iota
	TerrainMine
	TerrainTrees
	TerrainRocks
)

// String returns the terrain name.
func (t Terrain) String() string {
	switch t {
	case TerrainNone:
		return "None"
	case TerrainMine:
		return "Mine"
	case TerrainTrees:
		return "Trees"
	case TerrainRocks:
		return "Rocks"
	default:
		return "Unknown"
	}
}

// Char returns the seed letter for the terrain ('f' for forest).
func (t Terrain) Char() byte {
	switch t {
	case TerrainMine:
		return 'm'
	case TerrainTrees:
		return 'f'
	case TerrainRocks:
		return 'r'
	default:
		return '.'
	}
}
