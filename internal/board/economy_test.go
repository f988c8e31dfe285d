package board

import "testing"

func samePieceTypes(a, b []PieceType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAffordablePieceTypes(t *testing.T) {
	catalog := []PieceCost{
		{Type: King, Cost: 0},
		{Type: Queen, Cost: 9},
		{Type: Rook, Cost: 5},
		{Type: Knight, Cost: 3},
	}

	tests := []struct {
		name      string
		white     bool
		whiteGold int
		blackGold int
		want      []PieceType
	}{
		{"white five", true, 5, 100, []PieceType{King, Rook, Knight}},
		{"white broke", true, 0, 100, []PieceType{King}},
		{"white rich", true, 9, 0, []PieceType{King, Queen, Rook, Knight}},
		{"black four", false, 100, 4, []PieceType{King, Knight}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewEmptyBoard(4)
			b.WhiteIsActive = tc.white
			b.WhiteGold = tc.whiteGold
			b.BlackGold = tc.blackGold

			got := b.AffordablePieceTypes(catalog)
			if !samePieceTypes(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
			if b.WhiteGold != tc.whiteGold || b.BlackGold != tc.blackGold {
				t.Error("gold balances changed")
			}
		})
	}
}

func TestAffordablePieceTypesDedupes(t *testing.T) {
	b := NewEmptyBoard(4)
	b.WhiteGold = 50
	catalog := []PieceCost{
		{Type: Pawn, Cost: 20},
		{Type: Rook, Cost: 35},
		{Type: Pawn, Cost: 10},
		{Type: Queen, Cost: 70},
	}

	got := b.AffordablePieceTypes(catalog)
	if want := []PieceType{Pawn, Rook}; !samePieceTypes(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := b.AffordablePieceTypes([]PieceCost{{Type: NoPieceType, Cost: 0}}); len(got) != 0 {
		t.Errorf("empty piece type listed: %v", got)
	}
	if got := b.AffordablePieceTypes(nil); len(got) != 0 {
		t.Errorf("empty catalog: got %v", got)
	}
}

func TestActivePlayerGold(t *testing.T) {
	b := NewEmptyBoard(4)
	b.WhiteGold, b.BlackGold = DefaultWhiteGold, DefaultBlackGold

	if got := b.ActivePlayerGold(); got != DefaultWhiteGold {
		t.Errorf("white to move: got %d", got)
	}
	b.WhiteIsActive = false
	if got := b.ActivePlayerGold(); got != DefaultBlackGold {
		t.Errorf("black to move: got %d", got)
	}
}

func TestCostOf(t *testing.T) {
	if c, ok := CostOf(DefaultCatalog, Queen); !ok || c != 70 {
		t.Errorf("queen: got %d %v", c, ok)
	}
	if _, ok := CostOf(DefaultCatalog, King); ok {
		t.Error("king should not be for sale")
	}
}

func TestOwnedMineCount(t *testing.T) {
	b := NewEmptyBoard(5)
	for _, name := range []string{"a1", "c3", "e5"} {
		at(t, b, name).Terrain = TerrainMine
	}
	put(t, b, "a1", Pawn, true)
	put(t, b, "c3", Knight, true)
	at(t, b, "c3").ClearPiece()
	put(t, b, "e5", Rook, false)
	put(t, b, "b2", Queen, true) // not a mine

	if got := b.OwnedMineCount(true); got != 2 {
		t.Errorf("white mines = %d, want 2", got)
	}
	if got := b.OwnedMineCount(false); got != 1 {
		t.Errorf("black mines = %d, want 1", got)
	}
}
