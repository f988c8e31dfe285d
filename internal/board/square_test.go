package board

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		terrain  Terrain
		treasure bool
		piece    PieceType
		white    bool
		want     Blocker
	}{
		{"empty", TerrainNone, false, NoPieceType, false, Open},
		{"rocks", TerrainRocks, false, NoPieceType, false, FullBlock},
		{"trees", TerrainTrees, false, NoPieceType, false, StopAfterCapture},
		{"mine", TerrainMine, false, NoPieceType, false, StopAfterCapture},
		{"treasure", TerrainNone, true, NoPieceType, false, StopAfterCapture},
		{"own piece", TerrainNone, false, Rook, true, FullBlock},
		{"enemy piece", TerrainNone, false, Rook, false, StopAfterCapture},
		{"enemy on trees", TerrainTrees, false, Queen, false, StopAfterCapture},
		{"own on mine", TerrainMine, false, Pawn, true, FullBlock},
		{"enemy on rocks", TerrainRocks, false, Knight, false, FullBlock},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sq := NewSquare(0, 0, 4)
			sq.Terrain = tc.terrain
			sq.HasTreasure = tc.treasure
			if tc.piece != NoPieceType {
				sq.SetPiece(tc.piece, tc.white)
			}

			// The mover is always White here.
			for i := 0; i < 2; i++ {
				if got := sq.Classify(true); got != tc.want {
					t.Errorf("Classify(white) = %s, want %s", got, tc.want)
				}
			}
		})
	}
}

func TestClassifyDependsOnMover(t *testing.T) {
	sq := NewSquare(1, 1, 4)
	sq.SetPiece(Bishop, false)

	if got := sq.Classify(false); got != FullBlock {
		t.Errorf("black mover on black piece = %s, want FullBlock", got)
	}
	if got := sq.Classify(true); got != StopAfterCapture {
		t.Errorf("white mover on black piece = %s, want StopAfterCapture", got)
	}
}

func TestSetPieceMineOwnership(t *testing.T) {
	sq := NewSquare(2, 3, 8)
	sq.Terrain = TerrainMine

	if sq.OwnedBy != NoSide {
		t.Fatalf("fresh mine owned by %s", sq.OwnedBy)
	}

	sq.SetPiece(Knight, true)
	if sq.OwnedBy != White {
		t.Errorf("after white knight: owner %s, want White", sq.OwnedBy)
	}

	sq.ClearPiece()
	if sq.OwnedBy != White {
		t.Errorf("ownership should stick after the piece leaves, got %s", sq.OwnedBy)
	}

	sq.SetPiece(Pawn, false)
	if sq.OwnedBy != Black {
		t.Errorf("after black pawn: owner %s, want Black", sq.OwnedBy)
	}
}

func TestSetPieceNoOwnershipOffMine(t *testing.T) {
	for _, tr := range []Terrain{TerrainNone, TerrainTrees} {
		sq := NewSquare(0, 0, 4)
		sq.Terrain = tr
		sq.SetPiece(Queen, true)
		if sq.OwnedBy != NoSide {
			t.Errorf("%s square got owner %s", tr, sq.OwnedBy)
		}
	}
}

func TestSetPieceIdempotent(t *testing.T) {
	sq := NewSquare(1, 2, 6)
	sq.Terrain = TerrainMine

	sq.SetPiece(Rook, false)
	first := *sq
	sq.SetPiece(Rook, false)

	if *sq != first {
		t.Errorf("second SetPiece changed state: %+v -> %+v", first, *sq)
	}
}

func TestSetPieceOverwrites(t *testing.T) {
	sq := NewSquare(0, 0, 4)
	sq.SetPiece(Queen, true)
	sq.SetPiece(Pawn, false)

	if sq.Piece != Pawn || sq.PieceIsWhite {
		t.Errorf("got %s white=%v, want black Pawn", sq.Piece, sq.PieceIsWhite)
	}
}

func TestSquareName(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "a1"},
		{2, 4, "c5"},
		{11, 11, "l12"},
	}
	for _, tc := range tests {
		sq := NewSquare(tc.x, tc.y, 12)
		if got := sq.Name(); got != tc.want {
			t.Errorf("Name(%d,%d) = %s, want %s", tc.x, tc.y, got, tc.want)
		}
		x, y, err := ParseSquareName(tc.want, 12)
		if err != nil {
			t.Fatalf("ParseSquareName(%s): %v", tc.want, err)
		}
		if x != tc.x || y != tc.y {
			t.Errorf("ParseSquareName(%s) = (%d,%d), want (%d,%d)", tc.want, x, y, tc.x, tc.y)
		}
	}

	for _, bad := range []string{"", "a", "a0", "m1", "a13", "1a", "Ab"} {
		if _, _, err := ParseSquareName(bad, 12); err == nil {
			t.Errorf("ParseSquareName(%q) should fail", bad)
		}
	}
}
