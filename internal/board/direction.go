package board

import "fmt"

// Direction is one of the eight compass rays, clockwise from North.
// North points towards row 0.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NumDirections = 8
)

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the compass abbreviation.
func (d Direction) String() string {
	if d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// IsOrthogonal reports whether d runs along a row or column.
func (d Direction) IsOrthogonal() bool {
	return d%2 == 0
}

// IsDiagonal reports whether d runs along a diagonal.
func (d Direction) IsDiagonal() bool {
	return d%2 == 1
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 4) % NumDirections
}

// offset is a column/row step.
type offset struct {
	dx, dy int
}

var rayOffsets = [NumDirections]offset{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
}

// knightOffsets run clockwise from two north, one east.
var knightOffsets = [NumDirections]offset{
	{1, -2},
	{2, -1},
	{2, 1},
	{1, 2},
	{-1, 2},
	{-2, 1},
	{-2, -1},
	{-1, -2},
}

// NeighborInDirection returns the adjacent square in direction d, or nil
// when the step leaves the board.
func (b *Board) NeighborInDirection(sq *Square, d Direction) *Square {
	if d >= NumDirections {
		panic(fmt.Sprintf("board: invalid direction %d", d))
	}
	return b.step(sq, rayOffsets[d])
}

// KnightJump returns the square reached by the i-th knight offset, or nil
// when the jump leaves the board. Offsets run clockwise starting from two
// north, one east, so jump 0 is (dx,dy) = (1,-2) as row 0 is the north edge.
func (b *Board) KnightJump(sq *Square, i Direction) *Square {
	if i >= NumDirections {
		panic(fmt.Sprintf("board: invalid knight jump %d", i))
	}
	return b.step(sq, knightOffsets[i])
}

// step applies an offset using linear ids. The destination id must be on
// the board and the column must not have wrapped across a row edge.
func (b *Board) step(sq *Square, o offset) *Square {
	n := b.size
	src := sq.ID
	dst := src + o.dy*n + o.dx
	if dst < 0 || dst >= len(b.squares) {
		return nil
	}
	col := src % n
	if col+o.dx < 0 || col+o.dx >= n {
		return nil
	}
	return b.squares[dst]
}
