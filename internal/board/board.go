package board

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// MaxSize is the largest board dimension. Files are named a..z, so square
// names stop round-tripping beyond it.
const MaxSize = 26

var (
	// ErrInvalidBoardSize is returned when the square count is not a
	// positive perfect square of at most MaxSize*MaxSize.
	ErrInvalidBoardSize = errors.New("invalid board size")
	// ErrSquareMisplaced is returned when a square's coordinates do not
	// match its position in the input sequence.
	ErrSquareMisplaced = errors.New("square misplaced")
)

// Board owns every square of a size x size grid together with the side to
// move and both gold balances.
type Board struct {
	squares []*Square
	size    int

	WhiteIsActive bool
	WhiteGold     int
	BlackGold     int

	// kingSquare caches each side's king, indexed by Side.
	kingSquare [2]*Square

	zobrist *zobristTable
}

// NewBoard builds a board from a flat, row-major square sequence. The board
// takes ownership of the squares.
func NewBoard(squares []*Square) (*Board, error) {
	n := len(squares)
	size := int(math.Sqrt(float64(n)))
	for size*size > n {
		size--
	}
	for (size+1)*(size+1) <= n {
		size++
	}
	if n == 0 || size*size != n || size > MaxSize {
		return nil, fmt.Errorf("%w: %d squares", ErrInvalidBoardSize, n)
	}

	for i, sq := range squares {
		if sq == nil || sq.X != i%size || sq.Y != i/size {
			return nil, fmt.Errorf("%w: index %d", ErrSquareMisplaced, i)
		}
		sq.ID = i
	}

	return &Board{
		squares:       squares,
		size:          size,
		WhiteIsActive: true,
	}, nil
}

// NewEmptyBoard creates a size x size board of plain squares. Sizes outside
// [1, MaxSize] panic.
func NewEmptyBoard(size int) *Board {
	if size <= 0 || size > MaxSize {
		panic(fmt.Sprintf("board: invalid size %d", size))
	}
	squares := make([]*Square, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			squares = append(squares, NewSquare(x, y, size))
		}
	}
	b, _ := NewBoard(squares)
	return b
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// NumSquares returns size*size.
func (b *Board) NumSquares() int {
	return len(b.squares)
}

// Squares returns the squares in id order. The slice must not be modified.
func (b *Board) Squares() []*Square {
	return b.squares
}

// Square returns the square with the given id. Out-of-range ids panic.
func (b *Board) Square(id int) *Square {
	if id < 0 || id >= len(b.squares) {
		panic(fmt.Sprintf("board: square id %d out of range [0,%d)", id, len(b.squares)))
	}
	return b.squares[id]
}

// SquareAt returns the square at (x, y), or nil if off the board.
func (b *Board) SquareAt(x, y int) *Square {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return nil
	}
	return b.squares[y*b.size+x]
}

// SquareByName looks up a square by algebraic name.
func (b *Board) SquareByName(name string) (*Square, error) {
	x, y, err := ParseSquareName(name, b.size)
	if err != nil {
		return nil, err
	}
	return b.SquareAt(x, y), nil
}

// ActiveSide returns the side to move.
func (b *Board) ActiveSide() Side {
	return SideOf(b.WhiteIsActive)
}

// KingSquare returns the square of the given side's king, or nil if that
// side has no king. The result is cached and revalidated on every call.
func (b *Board) KingSquare(isWhite bool) *Square {
	side := SideOf(isWhite)
	if sq := b.kingSquare[side]; sq != nil && sq.Holds(King, isWhite) {
		return sq
	}
	b.kingSquare[side] = nil
	for _, sq := range b.squares {
		if sq.Holds(King, isWhite) {
			b.kingSquare[side] = sq
			break
		}
	}
	return b.kingSquare[side]
}

// PieceSquares returns every square holding a piece of the given side.
func (b *Board) PieceSquares(isWhite bool) []*Square {
	var out []*Square
	for _, sq := range b.squares {
		if sq.HasPiece() && sq.PieceIsWhite == isWhite {
			out = append(out, sq)
		}
	}
	return out
}

// InCheck reports whether the given side's king can be captured by the
// other side. A side without a king is never in check.
func (b *Board) InCheck(isWhite bool) bool {
	ksq := b.KingSquare(isWhite)
	if ksq == nil {
		return false
	}
	return b.IsSquareCapturable(ksq, !isWhite)
}

// String returns an ASCII diagram of the board, north row first.
// Pieces use uppercase for White, lowercase for Black; terrain uses its
// seed letter, treasure '$'.
func (b *Board) String() string {
	var sb strings.Builder

	for y := 0; y < b.size; y++ {
		fmt.Fprintf(&sb, "%2d ", y+1)
		for x := 0; x < b.size; x++ {
			sq := b.squares[y*b.size+x]
			sb.WriteByte(squareChar(sq))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("   ")
	for x := 0; x < b.size; x++ {
		sb.WriteByte('a' + byte(x))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "Side to move: %s\n", b.ActiveSide())
	fmt.Fprintf(&sb, "Gold: white %d, black %d\n", b.WhiteGold, b.BlackGold)

	return sb.String()
}

func squareChar(sq *Square) byte {
	switch {
	case sq.HasPiece():
		c := sq.Piece.Char()
		if sq.PieceIsWhite {
			c -= 'a' - 'A'
		}
		return c
	case sq.HasTreasure:
		return '$'
	default:
		return sq.Terrain.Char()
	}
}
