package board

import "testing"

func TestHashTracksState(t *testing.T) {
	b := NewEmptyBoard(6)
	empty := b.Hash()

	sq := at(t, b, "c3")
	sq.SetPiece(Rook, true)
	withRook := b.Hash()
	if withRook == empty {
		t.Fatal("placing a piece did not change the hash")
	}

	sq.SetPiece(Rook, false)
	if b.Hash() == withRook {
		t.Error("piece colour is not hashed")
	}
	sq.ClearPiece()
	if b.Hash() != empty {
		t.Error("clearing the piece did not restore the hash")
	}

	b.WhiteIsActive = false
	if b.Hash() == empty {
		t.Error("side to move is not hashed")
	}
	b.WhiteIsActive = true

	sq.Terrain = TerrainMine
	mine := b.Hash()
	sq.OwnedBy = White
	owned := b.Hash()
	if owned == mine {
		t.Error("mine owner is not hashed")
	}

	b.WhiteGold = 99
	if b.Hash() != owned {
		t.Error("gold must not be hashed")
	}
}

func TestHashStableAcrossBoards(t *testing.T) {
	const seed = "m_8x8_3k4t9m1f3r7"
	a, err := DecodeSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	b, err := DecodeSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	if a.Hash() != b.Hash() {
		t.Error("equal maps hash differently")
	}

	a.Square(0).HasTreasure = true
	if a.Hash() == b.Hash() {
		t.Error("treasure is not hashed")
	}
}
