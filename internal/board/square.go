// Package board implements the terrain chess board: squares, ray geometry,
// move generation and attack detection over an arbitrary square grid.
package board

import (
	"fmt"
	"strconv"
)

// Blocker classifies how a square affects a piece moving along a ray.
type Blocker uint8

const (
	// Open squares can be entered and rays continue through them.
	Open Blocker = iota
	// StopAfterCapture squares can be entered (capturing if needed) but end the ray.
	StopAfterCapture
	// FullBlock squares can be neither entered nor passed.
	FullBlock
)

// String returns the blocker name.
func (b Blocker) String() string {
	switch b {
	case Open:
		return "Open"
	case StopAfterCapture:
		return "StopAfterCapture"
	case FullBlock:
		return "FullBlock"
	default:
		return "Unknown"
	}
}

// Square is one cell of the board. ID, X and Y never change after
// construction; the remaining fields are mutated in place during a game.
type Square struct {
	ID int
	X  int
	Y  int

	Terrain      Terrain
	Piece        PieceType
	PieceIsWhite bool
	HasTreasure  bool

	// OwnedBy is only meaningful on mines. It is set by SetPiece and never
	// cleared, so a mine stays with the last side that stood on it.
	OwnedBy Side
}

// NewSquare creates an empty, terrain-free square at (x, y) on a board of
// the given size.
func NewSquare(x, y, size int) *Square {
	return &Square{
		ID:      y*size + x,
		X:       x,
		Y:       y,
		Piece:   NoPieceType,
		OwnedBy: NoSide,
	}
}

// HasPiece reports whether a piece stands on the square.
func (s *Square) HasPiece() bool {
	return s.Piece != NoPieceType
}

// PieceSide returns the side of the occupying piece, or NoSide.
func (s *Square) PieceSide() Side {
	if !s.HasPiece() {
		return NoSide
	}
	return SideOf(s.PieceIsWhite)
}

// Holds reports whether the square holds a piece of type pt for the given side.
func (s *Square) Holds(pt PieceType, isWhite bool) bool {
	return s.Piece == pt && pt != NoPieceType && s.PieceIsWhite == isWhite
}

// SetPiece puts a piece on the square, replacing whatever stood there.
// Placing a piece on a mine hands the mine to the piece's side.
func (s *Square) SetPiece(pt PieceType, isWhite bool) {
	s.Piece = pt
	s.PieceIsWhite = isWhite
	if s.Terrain == TerrainMine {
		s.OwnedBy = SideOf(isWhite)
	}
}

// ClearPiece removes the occupying piece. Mine ownership is kept.
func (s *Square) ClearPiece() {
	s.Piece = NoPieceType
	s.PieceIsWhite = false
}

// Classify reports how this square blocks a piece of the moving side.
// Move generation and attack detection must both go through here.
func (s *Square) Classify(movingSideIsWhite bool) Blocker {
	return classify(s.Terrain, s.HasTreasure, s.Piece, s.PieceIsWhite, movingSideIsWhite)
}

func classify(t Terrain, treasure bool, pt PieceType, pieceIsWhite, movingSideIsWhite bool) Blocker {
	occupied := pt != NoPieceType
	if t == TerrainRocks || (occupied && pieceIsWhite == movingSideIsWhite) {
		return FullBlock
	}
	if t != TerrainNone || treasure || occupied {
		return StopAfterCapture
	}
	return Open
}

// Name returns the algebraic name of the square (e.g. "c3").
// Files run a..z from X=0, which caps boards at MaxSize; ranks count from 1.
func (s *Square) Name() string {
	return fmt.Sprintf("%c%d", 'a'+s.X, s.Y+1)
}

// String returns a short description for debugging.
func (s *Square) String() string {
	if !s.HasPiece() {
		return fmt.Sprintf("%s(%s)", s.Name(), s.Terrain)
	}
	return fmt.Sprintf("%s(%s %s %s)", s.Name(), s.Terrain, s.PieceSide(), s.Piece)
}

// ParseSquareName parses an algebraic square name for a board of the given size.
func ParseSquareName(name string, size int) (x, y int, err error) {
	if len(name) < 2 {
		return 0, 0, fmt.Errorf("invalid square: %q", name)
	}
	x = int(name[0] - 'a')
	rank, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid square: %q", name)
	}
	y = rank - 1
	if x < 0 || x >= size || y < 0 || y >= size {
		return 0, 0, fmt.Errorf("square %q is off a %dx%d board", name, size, size)
	}
	return x, y, nil
}
