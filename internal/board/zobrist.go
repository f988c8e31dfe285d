package board

// zobristTable holds hash keys for one board size. Keys come from a PRNG
// seeded with the size, so equal boards hash equally across processes.
type zobristTable struct {
	piece      [][2][6]uint64 // [square][side][piece type]
	terrain    [][4]uint64    // [square][terrain]
	treasure   []uint64       // [square]
	owner      [][2]uint64    // [square][side]
	sideToMove uint64         // XOR when Black is to move
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func newZobristTable(numSquares int) *zobristTable {
	rng := newPRNG(0x98F107A2BEEF1234 ^ uint64(numSquares)<<20)

	t := &zobristTable{
		piece:    make([][2][6]uint64, numSquares),
		terrain:  make([][4]uint64, numSquares),
		treasure: make([]uint64, numSquares),
		owner:    make([][2]uint64, numSquares),
	}
	for sq := 0; sq < numSquares; sq++ {
		for s := White; s <= Black; s++ {
			for pt := King; pt <= Pawn; pt++ {
				t.piece[sq][s][pt] = rng.next()
			}
			t.owner[sq][s] = rng.next()
		}
		// TerrainNone keeps a zero key so plain squares do not contribute.
		for tr := TerrainMine; tr <= TerrainRocks; tr++ {
			t.terrain[sq][tr] = rng.next()
		}
		t.treasure[sq] = rng.next()
	}
	t.sideToMove = rng.next()

	return t
}

// Hash returns the Zobrist hash of the full board state: pieces, terrain,
// treasure, mine owners and side to move. Gold is not hashed.
func (b *Board) Hash() uint64 {
	if b.zobrist == nil {
		b.zobrist = newZobristTable(len(b.squares))
	}
	t := b.zobrist

	var h uint64
	for id, sq := range b.squares {
		if sq.HasPiece() {
			h ^= t.piece[id][sq.PieceSide()][sq.Piece]
		}
		if sq.Terrain <= TerrainRocks {
			h ^= t.terrain[id][sq.Terrain]
		}
		if sq.HasTreasure {
			h ^= t.treasure[id]
		}
		if sq.OwnedBy < NoSide {
			h ^= t.owner[id][sq.OwnedBy]
		}
	}
	if !b.WhiteIsActive {
		h ^= t.sideToMove
	}
	return h
}
