package board

import (
	"errors"
	"fmt"
	"strings"
)

// MoveKind tags a move record. Only plain moves exist today; drops and
// terrain interactions would get their own kinds.
type MoveKind string

// KindMove is a piece moving from one square to another.
const KindMove MoveKind = "move"

// ErrInvalidMove is returned when a move cannot be applied to the board.
var ErrInvalidMove = errors.New("invalid move")

// Move is a single piece move between two square ids.
type Move struct {
	Kind     MoveKind `json:"type"`
	SourceID int      `json:"sourceId"`
	DestID   int      `json:"destId"`
}

// NewMove creates a plain move.
func NewMove(from, to *Square) Move {
	return Move{Kind: KindMove, SourceID: from.ID, DestID: to.ID}
}

// String returns the move as "src->dst" ids.
func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.SourceID, m.DestID)
}

// Notation returns the move in coordinate notation ("a1-b2"), using "x"
// instead of "-" when the destination holds a piece or treasure.
func (m Move) Notation(b *Board) string {
	from := b.Square(m.SourceID)
	to := b.Square(m.DestID)

	var sb strings.Builder
	sb.WriteString(from.Name())
	if to.HasPiece() || to.HasTreasure {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(to.Name())
	return sb.String()
}

// ParseMove parses coordinate notation ("a1-b2", "a1xb2" or "a1b2").
func ParseMove(s string, b *Board) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	sep := strings.IndexAny(s[1:], "-x") + 1
	var fromStr, toStr string
	if sep > 0 {
		fromStr, toStr = s[:sep], s[sep+1:]
	} else {
		// No separator: split where the second file letter starts.
		i := 1
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		fromStr, toStr = s[:i], s[i:]
	}

	from, err := b.SquareByName(fromStr)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	to, err := b.SquareByName(toStr)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	return NewMove(from, to), nil
}

// Flatten concatenates per-direction move groups.
func Flatten(groups [][]Move) []Move {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]Move, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// ApplyMove moves the source piece onto the destination, capturing whatever
// stood there and consuming any treasure. It only checks the move's shape;
// legality is the caller's business. Turn and gold are left untouched.
func (b *Board) ApplyMove(m Move) error {
	if m.Kind != KindMove {
		return fmt.Errorf("%w: unsupported kind %q", ErrInvalidMove, m.Kind)
	}
	if m.SourceID < 0 || m.SourceID >= len(b.squares) || m.DestID < 0 || m.DestID >= len(b.squares) {
		return fmt.Errorf("%w: %s off board", ErrInvalidMove, m)
	}
	if m.SourceID == m.DestID {
		return fmt.Errorf("%w: %s is a null move", ErrInvalidMove, m)
	}
	from := b.squares[m.SourceID]
	if !from.HasPiece() {
		return fmt.Errorf("%w: no piece on %s", ErrInvalidMove, from.Name())
	}

	to := b.squares[m.DestID]
	pt, white := from.Piece, from.PieceIsWhite
	from.ClearPiece()
	to.HasTreasure = false
	to.SetPiece(pt, white)
	if pt == King {
		b.kingSquare[SideOf(white)] = to
	}
	return nil
}
