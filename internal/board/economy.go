package board

// PieceCost is one entry of the placement price catalog.
type PieceCost struct {
	Type PieceType `json:"type"`
	Cost int       `json:"cost"`
}

// DefaultCatalog holds the standard placement prices. Kings are never
// bought and are not listed.
var DefaultCatalog = []PieceCost{
	{Type: Queen, Cost: 70},
	{Type: Rook, Cost: 35},
	{Type: Bishop, Cost: 25},
	{Type: Knight, Cost: 30},
	{Type: Pawn, Cost: 20},
}

// Starting gold for a new game. Black starts ahead to offset
// White's first move.
const (
	DefaultWhiteGold = 0
	DefaultBlackGold = 10
)

// ActivePlayerGold returns the gold of the side to move.
func (b *Board) ActivePlayerGold() int {
	if b.WhiteIsActive {
		return b.WhiteGold
	}
	return b.BlackGold
}

// AffordablePieceTypes returns, in catalog order, every piece type whose
// cost does not exceed the active player's gold. Each type appears once.
func (b *Board) AffordablePieceTypes(catalog []PieceCost) []PieceType {
	gold := b.ActivePlayerGold()

	var seen [NoPieceType]bool
	var out []PieceType
	for _, pc := range catalog {
		if pc.Cost > gold || pc.Type >= NoPieceType || seen[pc.Type] {
			continue
		}
		seen[pc.Type] = true
		out = append(out, pc.Type)
	}
	return out
}

// CostOf returns the catalog price of pt and whether it is listed.
func CostOf(catalog []PieceCost, pt PieceType) (int, bool) {
	for _, pc := range catalog {
		if pc.Type == pt {
			return pc.Cost, true
		}
	}
	return 0, false
}

// OwnedMineCount returns how many mines are currently owned by the side.
func (b *Board) OwnedMineCount(isWhite bool) int {
	side := SideOf(isWhite)
	n := 0
	for _, sq := range b.squares {
		if sq.Terrain == TerrainMine && sq.OwnedBy == side {
			n++
		}
	}
	return n
}
