package board

import (
	"errors"
	"testing"
)

func TestDecodeMirroredSeed(t *testing.T) {
	const seed = "m_6x6_2k2t1mr3f5"
	b, err := DecodeSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	if b.Size() != 6 || !b.WhiteIsActive {
		t.Fatalf("size %d whiteIsActive %v", b.Size(), b.WhiteIsActive)
	}

	checks := []struct {
		id    int
		check func(sq *Square) bool
		what  string
	}{
		{2, func(sq *Square) bool { return sq.Holds(King, true) }, "white king"},
		{5, func(sq *Square) bool { return sq.HasTreasure }, "treasure"},
		{7, func(sq *Square) bool { return sq.Terrain == TerrainMine }, "mine"},
		{8, func(sq *Square) bool { return sq.Terrain == TerrainRocks }, "rocks"},
		{12, func(sq *Square) bool { return sq.Terrain == TerrainTrees }, "trees"},
		{33, func(sq *Square) bool { return sq.Holds(King, false) }, "black king"},
		{30, func(sq *Square) bool { return sq.HasTreasure }, "treasure"},
		{28, func(sq *Square) bool { return sq.Terrain == TerrainMine }, "mine"},
		{27, func(sq *Square) bool { return sq.Terrain == TerrainRocks }, "rocks"},
		{23, func(sq *Square) bool { return sq.Terrain == TerrainTrees }, "trees"},
	}
	for _, c := range checks {
		if !c.check(b.Square(c.id)) {
			t.Errorf("square %d: want %s, got %s", c.id, c.what, b.Square(c.id))
		}
	}

	if got := EncodeSeed(b, true); got != seed {
		t.Errorf("EncodeSeed = %s, want %s", got, seed)
	}
	if b.KingSquare(false).ID != 33 {
		t.Errorf("black king cached on %d", b.KingSquare(false).ID)
	}
}

func TestFullSeedRoundTrip(t *testing.T) {
	b := NewEmptyBoard(4)
	put(t, b, "a1", King, true)
	put(t, b, "d4", King, false)
	b.Square(5).HasTreasure = true
	b.Square(6).Terrain = TerrainRocks

	seed := EncodeSeed(b, false)
	if seed != "r_4x4_k4tr8k" {
		t.Fatalf("EncodeSeed = %s", seed)
	}

	got, err := DecodeSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	if got.Hash() != b.Hash() {
		t.Errorf("decoded board differs:\n%s\nwant\n%s", got, b)
	}
}

func TestSeedLongRuns(t *testing.T) {
	b := NewEmptyBoard(5)
	put(t, b, "a1", King, true)
	put(t, b, "e5", King, false)

	seed := EncodeSeed(b, false)
	if seed != "r_5x5_k995k" {
		t.Fatalf("EncodeSeed = %s", seed)
	}
	got, err := DecodeSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	if got.KingSquare(false).Name() != "e5" {
		t.Errorf("black king on %s", got.KingSquare(false).Name())
	}
}

func TestDecodeSeedErrors(t *testing.T) {
	for _, seed := range []string{
		"",
		"m_6x6",
		"x_6x6_",
		"m_6x8_",
		"m_axa_",
		"m_0x0_",
		"m_6x6_zz",
		"m_6x6_kz",
		"m_6x6_99999",
		"m_6x6_9k9",
		"m_5x5_",
		"m_6x6_9",
		"r_4x4_4tr8",
		"r_27x27_k",
		"r_50000x50000_k",
		"r_3037000500x3037000500_k",
	} {
		if _, err := DecodeSeed(seed); !errors.Is(err, ErrInvalidSeed) {
			t.Errorf("DecodeSeed(%q): err = %v, want ErrInvalidSeed", seed, err)
		}
	}
}

func TestMirrorFirstHalf(t *testing.T) {
	b := NewEmptyBoard(4)
	put(t, b, "b1", King, true)
	at(t, b, "a2").Terrain = TerrainMine
	put(t, b, "a4", Queen, true)
	mirror := b.Square(15 - at(t, b, "a2").ID)
	mirror.Terrain = TerrainMine
	mirror.OwnedBy = White

	b.MirrorFirstHalf()

	if !b.Square(15 - 1).Holds(King, false) {
		t.Errorf("reflected king missing: %s", b.Square(14))
	}
	if at(t, b, "a4").HasPiece() {
		t.Error("second-half pieces should be cleared")
	}
	if mirror.Terrain != TerrainMine || mirror.OwnedBy != NoSide {
		t.Errorf("mirrored mine = %s", mirror)
	}
	if b.KingSquare(false) != b.Square(14) {
		t.Error("king cache not rebuilt")
	}
}
