package mapgen

import (
	"errors"
	"testing"

	"github.com/hailam/ageofchess/internal/board"
)

type featureCount struct {
	rocks, trees, mines, treasure int
}

func countFeatures(b *board.Board) featureCount {
	var c featureCount
	for _, sq := range b.Squares() {
		switch sq.Terrain {
		case board.TerrainRocks:
			c.rocks++
		case board.TerrainTrees:
			c.trees++
		case board.TerrainMine:
			c.mines++
		}
		if sq.HasTreasure {
			c.treasure++
		}
	}
	return c
}

func TestInvalidSizes(t *testing.T) {
	g := New(1)
	for _, n := range []int{0, 4, 5, 7, 15, 18} {
		if _, err := g.GenerateMirrored(n); !errors.Is(err, ErrInvalidMapSize) {
			t.Errorf("GenerateMirrored(%d): err = %v", n, err)
		}
		if _, err := g.GenerateFullRandom(n); !errors.Is(err, ErrInvalidMapSize) {
			t.Errorf("GenerateFullRandom(%d): err = %v", n, err)
		}
	}
}

func TestGenerateMirrored(t *testing.T) {
	for n := MinSize; n <= MaxSize; n += 2 {
		for seed := int64(1); seed <= 5; seed++ {
			m, err := New(seed).GenerateMirrored(n)
			if err != nil {
				t.Fatalf("n=%d seed=%d: %v", n, seed, err)
			}
			b := m.Board
			total := n * n

			for id := 0; id < total/2; id++ {
				a, z := b.Square(id), b.Square(total-1-id)
				if a.Terrain != z.Terrain || a.HasTreasure != z.HasTreasure {
					t.Fatalf("n=%d seed=%d: %s and %s differ", n, seed, a, z)
				}
			}

			wk, bk := b.KingSquare(true), b.KingSquare(false)
			if wk == nil || bk == nil {
				t.Fatalf("n=%d seed=%d: missing king\n%s", n, seed, b)
			}
			if wk.ID >= total/2 || bk.ID != total-1-wk.ID {
				t.Errorf("n=%d seed=%d: kings on %d and %d", n, seed, wk.ID, bk.ID)
			}
			if wk.Y == n/2-1 && (wk.X == n/2 || wk.X == n/2-1) {
				t.Errorf("n=%d seed=%d: white king on a centre square %s", n, seed, wk.Name())
			}
			if wk.Terrain != board.TerrainNone || wk.HasTreasure {
				t.Errorf("n=%d seed=%d: king on %s", n, seed, wk)
			}

			decoded, err := board.DecodeSeed(m.Seed)
			if err != nil {
				t.Fatalf("n=%d seed=%d: decode %q: %v", n, seed, m.Seed, err)
			}
			if decoded.Hash() != b.Hash() {
				t.Errorf("n=%d seed=%d: seed %q does not reproduce the map", n, seed, m.Seed)
			}
		}
	}
}

func TestMirroredFeatureCounts(t *testing.T) {
	m, err := New(7).GenerateMirrored(12)
	if err != nil {
		t.Fatal(err)
	}
	got := countFeatures(m.Board)
	want := featureCount{rocks: 6, trees: 6, mines: 6, treasure: 6}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestGenerateFullRandom(t *testing.T) {
	for n := MinSize; n <= MaxSize; n += 2 {
		m, err := New(int64(n)).GenerateFullRandom(n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		b := m.Board
		half := n * n / 2

		wk, bk := b.KingSquare(true), b.KingSquare(false)
		if wk == nil || bk == nil {
			t.Fatalf("n=%d: missing king\n%s", n, b)
		}
		if wk.ID > half-1-n || bk.ID < half-1+n {
			t.Errorf("n=%d: kings on %d and %d", n, wk.ID, bk.ID)
		}

		decoded, err := board.DecodeSeed(m.Seed)
		if err != nil {
			t.Fatalf("n=%d: decode %q: %v", n, m.Seed, err)
		}
		if decoded.Hash() != b.Hash() {
			t.Errorf("n=%d: seed %q does not reproduce the map", n, m.Seed)
		}
		if m.Seed[0] != 'r' {
			t.Errorf("n=%d: seed %q should be a full seed", n, m.Seed)
		}
	}
}

func TestFullRandomFeatureCounts(t *testing.T) {
	tests := []struct {
		n    int
		want featureCount
	}{
		{8, featureCount{rocks: 3, trees: 3, mines: 3, treasure: 3}},
		{12, featureCount{rocks: 6, trees: 6, mines: 6, treasure: 6}},
		{16, featureCount{rocks: 11, trees: 11, mines: 9, treasure: 11}},
	}
	for _, tc := range tests {
		m, err := New(99).GenerateFullRandom(tc.n)
		if err != nil {
			t.Fatal(err)
		}
		if got := countFeatures(m.Board); got != tc.want {
			t.Errorf("n=%d: got %+v, want %+v", tc.n, got, tc.want)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a, err := New(42).GenerateMirrored(10)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(42).GenerateMirrored(10)
	if err != nil {
		t.Fatal(err)
	}
	if a.Seed != b.Seed {
		t.Errorf("same rng seed gave %q and %q", a.Seed, b.Seed)
	}
}
