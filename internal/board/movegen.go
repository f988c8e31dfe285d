package board

import "fmt"

// mustHavePiece panics when a generator is asked about an empty square.
func mustHavePiece(src *Square) {
	if !src.HasPiece() {
		panic(fmt.Sprintf("board: no piece on %s", src.Name()))
	}
}

// LegalMovesForKing returns the king's single steps. Off-board squares,
// rocks, own pieces and squares the opponent could capture on are skipped.
// The king's own square counts as vacated while probing so that it cannot
// shelter behind itself on an attacker's ray.
func (b *Board) LegalMovesForKing(src *Square) []Move {
	mustHavePiece(src)
	white := src.PieceIsWhite

	var moves []Move
	for d := North; d < NumDirections; d++ {
		dst := b.NeighborInDirection(src, d)
		if dst == nil || dst.Terrain == TerrainRocks {
			continue
		}
		if dst.Classify(white) == FullBlock {
			continue
		}
		if b.isCapturable(dst, !white, src) {
			continue
		}
		moves = append(moves, NewMove(src, dst))
	}
	return moves
}

// LegalMovesForQueen returns the queen's moves grouped by direction, one
// group for each of the eight rays.
func (b *Board) LegalMovesForQueen(src *Square) [][]Move {
	return b.sliderMoves(src, North, 1)
}

// LegalMovesForRook returns the rook's moves grouped by orthogonal ray.
func (b *Board) LegalMovesForRook(src *Square) [][]Move {
	return b.sliderMoves(src, North, 2)
}

// LegalMovesForBishop returns the bishop's moves grouped by diagonal ray.
func (b *Board) LegalMovesForBishop(src *Square) [][]Move {
	return b.sliderMoves(src, NorthEast, 2)
}

func (b *Board) sliderMoves(src *Square, first, stride Direction) [][]Move {
	mustHavePiece(src)
	groups := make([][]Move, 0, NumDirections/stride)
	for d := first; d < NumDirections; d += stride {
		ray := b.OpenSquaresAlongRay(src, d, src.PieceIsWhite)
		group := make([]Move, 0, len(ray))
		for _, dst := range ray {
			group = append(group, NewMove(src, dst))
		}
		groups = append(groups, group)
	}
	return groups
}

// LegalMovesForKnight returns the knight's jumps. Each target is classified
// once and kept unless it is fully blocked.
func (b *Board) LegalMovesForKnight(src *Square) []Move {
	mustHavePiece(src)
	var moves []Move
	for i := North; i < NumDirections; i++ {
		dst := b.KnightJump(src, i)
		if dst == nil || dst.Classify(src.PieceIsWhite) == FullBlock {
			continue
		}
		moves = append(moves, NewMove(src, dst))
	}
	return moves
}

// LegalMovesForPawn returns the pawn's moves. Pawns step one square
// orthogonally onto squares without pieces or treasure, and capture one
// square diagonally onto enemy pieces or treasure. Rocks stop both.
func (b *Board) LegalMovesForPawn(src *Square) []Move {
	mustHavePiece(src)
	white := src.PieceIsWhite

	var moves []Move
	for d := North; d < NumDirections; d++ {
		dst := b.NeighborInDirection(src, d)
		if dst == nil || dst.Terrain == TerrainRocks {
			continue
		}
		if d.IsOrthogonal() {
			if dst.HasPiece() || dst.HasTreasure {
				continue
			}
		} else {
			enemy := dst.HasPiece() && dst.PieceIsWhite != white
			if !enemy && !(dst.HasTreasure && !dst.HasPiece()) {
				continue
			}
		}
		moves = append(moves, NewMove(src, dst))
	}
	return moves
}

// LegalMovesFor returns the flattened moves of whatever piece stands on src.
func (b *Board) LegalMovesFor(src *Square) []Move {
	if src.Piece.IsSlider() {
		return Flatten(b.SlidingMoves(src))
	}
	switch src.Piece {
	case King:
		return b.LegalMovesForKing(src)
	case Knight:
		return b.LegalMovesForKnight(src)
	case Pawn:
		return b.LegalMovesForPawn(src)
	default:
		panic(fmt.Sprintf("board: no piece on %s", src.Name()))
	}
}

// SlidingMoves returns the per-direction move groups of the queen, rook or
// bishop on src. Other pieces panic.
func (b *Board) SlidingMoves(src *Square) [][]Move {
	switch src.Piece {
	case Queen:
		return b.LegalMovesForQueen(src)
	case Rook:
		return b.LegalMovesForRook(src)
	case Bishop:
		return b.LegalMovesForBishop(src)
	default:
		panic(fmt.Sprintf("board: %s on %s does not slide", src.Piece, src.Name()))
	}
}

// LegalMoves returns the moves of every piece belonging to the side to
// move, in square id order.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	for _, sq := range b.PieceSquares(b.WhiteIsActive) {
		moves = append(moves, b.LegalMovesFor(sq)...)
	}
	return moves
}
