package board

// OpenSquaresAlongRay returns the squares a piece of the mover's side can
// reach from src walking in direction d, nearest first. The walk stops
// before a FullBlock square and after a StopAfterCapture square.
func (b *Board) OpenSquaresAlongRay(src *Square, d Direction, moverIsWhite bool) []*Square {
	var out []*Square
	sq := src
	for {
		sq = b.NeighborInDirection(sq, d)
		if sq == nil {
			return out
		}
		blocker := sq.Classify(moverIsWhite)
		if blocker == FullBlock {
			return out
		}
		out = append(out, sq)
		if blocker == StopAfterCapture {
			return out
		}
	}
}

// DiscoverAttackerAlongRay reports whether an enemy piece standing on the
// ray from src in direction d could capture src. The first non-open square
// decides: kings attack only from range 1, queens always, rooks only on
// orthogonal rays and bishops only on diagonal ones.
func (b *Board) DiscoverAttackerAlongRay(src *Square, d Direction, defenderIsWhite bool) bool {
	return b.discoverAttacker(src, d, defenderIsWhite, nil)
}

// discoverAttacker walks like DiscoverAttackerAlongRay, treating vacated as
// if its piece had been lifted.
func (b *Board) discoverAttacker(src *Square, d Direction, defenderIsWhite bool, vacated *Square) bool {
	sq := src
	for rng := 1; ; rng++ {
		sq = b.NeighborInDirection(sq, d)
		if sq == nil {
			return false
		}

		pt := sq.Piece
		if sq == vacated {
			pt = NoPieceType
		}

		switch classify(sq.Terrain, sq.HasTreasure, pt, sq.PieceIsWhite, defenderIsWhite) {
		case FullBlock:
			return false
		case StopAfterCapture:
			return attacksAlongRay(pt, d, rng)
		}
	}
}

// attacksAlongRay reports whether a piece of type pt, first met at distance
// rng along direction d, attacks the ray's origin.
func attacksAlongRay(pt PieceType, d Direction, rng int) bool {
	switch pt {
	case King:
		return rng == 1
	case Queen:
		return true
	case Rook:
		return d.IsOrthogonal()
	case Bishop:
		return d.IsDiagonal()
	default:
		// Empty terrain/treasure squares, knights and pawns.
		return false
	}
}

// IsSquareCapturable reports whether a piece of the attacking side could
// capture on sq: a slider or king found along one of the eight rays, or a
// knight one jump away.
func (b *Board) IsSquareCapturable(sq *Square, attackerIsWhite bool) bool {
	return b.isCapturable(sq, attackerIsWhite, nil)
}

func (b *Board) isCapturable(sq *Square, attackerIsWhite bool, vacated *Square) bool {
	for d := North; d < NumDirections; d++ {
		if b.discoverAttacker(sq, d, !attackerIsWhite, vacated) {
			return true
		}
	}
	for i := North; i < NumDirections; i++ {
		if to := b.KnightJump(sq, i); to != nil && to != vacated && to.Holds(Knight, attackerIsWhite) {
			return true
		}
	}
	return false
}

// Attackers returns the squares of the attacking side's pieces that could
// capture on sq. Ray attackers come first in direction order, then knights.
func (b *Board) Attackers(sq *Square, attackerIsWhite bool) []*Square {
	var out []*Square
	for d := North; d < NumDirections; d++ {
		if !b.DiscoverAttackerAlongRay(sq, d, !attackerIsWhite) {
			continue
		}
		cur := sq
		for {
			cur = b.NeighborInDirection(cur, d)
			if cur.Classify(!attackerIsWhite) != Open {
				out = append(out, cur)
				break
			}
		}
	}
	for i := North; i < NumDirections; i++ {
		if to := b.KnightJump(sq, i); to != nil && to.Holds(Knight, attackerIsWhite) {
			out = append(out, to)
		}
	}
	return out
}
