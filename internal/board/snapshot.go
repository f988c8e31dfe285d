package board

import (
	"fmt"
	"strings"
)

// SquareState is the serialisable state of one square.
type SquareState struct {
	Terrain     string `json:"terrain,omitempty"`
	Piece       string `json:"piece,omitempty"` // "K" white king, "q" black queen, ...
	HasTreasure bool   `json:"treasure,omitempty"`
	OwnedBy     string `json:"ownedBy,omitempty"`
}

// Snapshot is a JSON-friendly copy of a board.
type Snapshot struct {
	Size          int           `json:"size"`
	WhiteIsActive bool          `json:"whiteIsActive"`
	WhiteGold     int           `json:"whiteGold"`
	BlackGold     int           `json:"blackGold"`
	Squares       []SquareState `json:"squares"`
}

// Snapshot copies the board into a Snapshot.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Size:          b.size,
		WhiteIsActive: b.WhiteIsActive,
		WhiteGold:     b.WhiteGold,
		BlackGold:     b.BlackGold,
		Squares:       make([]SquareState, len(b.squares)),
	}
	for i, sq := range b.squares {
		st := SquareState{HasTreasure: sq.HasTreasure}
		if sq.Terrain != TerrainNone {
			st.Terrain = strings.ToLower(sq.Terrain.String())
		}
		if sq.HasPiece() {
			st.Piece = string(squareChar(sq))
		}
		if sq.OwnedBy < NoSide {
			st.OwnedBy = strings.ToLower(sq.OwnedBy.String())
		}
		s.Squares[i] = st
	}
	return s
}

// FromSnapshot rebuilds a board from a Snapshot.
func FromSnapshot(s Snapshot) (*Board, error) {
	if s.Size <= 0 || s.Size > MaxSize || len(s.Squares) != s.Size*s.Size {
		return nil, fmt.Errorf("%w: snapshot of size %d with %d squares", ErrInvalidBoardSize, s.Size, len(s.Squares))
	}
	if s.WhiteGold < 0 || s.BlackGold < 0 {
		return nil, fmt.Errorf("snapshot: negative gold %d/%d", s.WhiteGold, s.BlackGold)
	}

	squares := make([]*Square, len(s.Squares))
	for i, st := range s.Squares {
		sq := NewSquare(i%s.Size, i/s.Size, s.Size)
		sq.HasTreasure = st.HasTreasure

		switch st.Terrain {
		case "":
		case "mine":
			sq.Terrain = TerrainMine
		case "trees":
			sq.Terrain = TerrainTrees
		case "rocks":
			sq.Terrain = TerrainRocks
		default:
			return nil, fmt.Errorf("snapshot: square %d: unknown terrain %q", i, st.Terrain)
		}

		if st.Piece != "" {
			pt := PieceTypeFromChar(st.Piece[0])
			if len(st.Piece) != 1 || pt == NoPieceType {
				return nil, fmt.Errorf("snapshot: square %d: unknown piece %q", i, st.Piece)
			}
			sq.Piece = pt
			sq.PieceIsWhite = st.Piece[0] >= 'A' && st.Piece[0] <= 'Z'
		}

		switch st.OwnedBy {
		case "":
		case "white":
			sq.OwnedBy = White
		case "black":
			sq.OwnedBy = Black
		default:
			return nil, fmt.Errorf("snapshot: square %d: unknown owner %q", i, st.OwnedBy)
		}

		squares[i] = sq
	}

	b, err := NewBoard(squares)
	if err != nil {
		return nil, err
	}
	b.WhiteIsActive = s.WhiteIsActive
	b.WhiteGold = s.WhiteGold
	b.BlackGold = s.BlackGold
	return b, nil
}
