// Package mapgen generates random terrain maps.
//
// Mirrored maps are built on the first half of the square ids and then
// point-reflected, so both sides get the same terrain. Full random maps
// fill the whole board and only keep the two kings apart.
package mapgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hailam/ageofchess/internal/board"
	"github.com/hailam/ageofchess/internal/logger"
)

// Size limits for generated maps.
const (
	MinSize = 6
	MaxSize = 16
)

var (
	// ErrInvalidMapSize is returned for odd sizes or sizes outside
	// [MinSize, MaxSize].
	ErrInvalidMapSize = errors.New("invalid map size")
	// ErrNoRoom is returned when no square is left for a feature.
	ErrNoRoom = errors.New("no free square")
)

// mirroredFraction is the share of each half covered by every terrain
// variant on mirrored maps.
const mirroredFraction = 0.02

// Map is a generated board together with the seed that reproduces it.
type Map struct {
	Board *board.Board
	Seed  string
}

// Generator produces maps from a seeded random source. It is not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
	log *logrus.Entry
}

// New creates a generator. A zero seed uses the current time.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		log: logger.Component("mapgen").WithField("rng_seed", seed),
	}
}

func checkSize(n int) error {
	if n%2 != 0 || n < MinSize || n > MaxSize {
		return fmt.Errorf("%w: %dx%d (want even, %d-%d)", ErrInvalidMapSize, n, n, MinSize, MaxSize)
	}
	return nil
}

// isGrass reports the checkerboard colour. Terrain of each kind is spread
// over both colours so it does not cluster on one diagonal pattern.
func isGrass(sq *board.Square) bool {
	return (sq.X+sq.Y)%2 == 0
}

// terrainVariant is one terrain kind restricted to one square colour.
type terrainVariant struct {
	terrain board.Terrain
	grass   bool
}

// variants lists terrain in placement order: rocks, trees, then mines.
var variants = []terrainVariant{
	{board.TerrainRocks, false},
	{board.TerrainRocks, true},
	{board.TerrainTrees, false},
	{board.TerrainTrees, true},
	{board.TerrainMine, false},
	{board.TerrainMine, true},
}

// GenerateMirrored builds an n x n map whose second half mirrors the first.
func (g *Generator) GenerateMirrored(n int) (*Map, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	b := board.NewEmptyBoard(n)
	half := n * n / 2

	perVariant := int(math.Round(mirroredFraction * float64(n*n) * 0.5))
	if perVariant == 0 {
		perVariant = 1
	}
	for _, v := range variants {
		if err := g.addTerrain(b, v, perVariant, 0, half-1); err != nil {
			return nil, err
		}
	}
	if n == 10 || n == 12 {
		// Mid-sized maps get one extra grass mine, rock and forest.
		for _, t := range []board.Terrain{board.TerrainMine, board.TerrainRocks, board.TerrainTrees} {
			if err := g.addTerrain(b, terrainVariant{t, true}, 1, 0, half-1); err != nil {
				return nil, err
			}
		}
	}

	treasure := int(math.Round(mirroredFraction * float64(countPlain(b))))
	if treasure < 2 {
		treasure = 2
	}
	if err := g.addTreasure(b, treasure, 0, half-1); err != nil {
		return nil, err
	}

	// Keep the king off the four centre squares.
	king, err := g.randomEmpty(b, 0, half-1, func(sq *board.Square) bool {
		return sq.Y == n/2-1 && (sq.X == n/2 || sq.X == n/2-1)
	})
	if err != nil {
		return nil, err
	}
	king.SetPiece(board.King, true)

	b.MirrorFirstHalf()
	return g.finish(b, true), nil
}

// fullRandomDensity returns the per-variant terrain count for a full random
// map and whether one extra of each grass variant and one extra treasure
// are added.
func fullRandomDensity(n int) (density int, addOne bool) {
	switch n {
	case 8:
		return 1, true
	case 10:
		return 2, true
	case 12:
		return 3, false
	case 14:
		return 4, false
	case 16:
		return 5, true
	default:
		return 1, false
	}
}

// GenerateFullRandom builds an n x n map without symmetry. Each king stays
// in its own half, one row away from the boundary.
func (g *Generator) GenerateFullRandom(n int) (*Map, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	b := board.NewEmptyBoard(n)
	last := n*n - 1
	half := n * n / 2

	density, addOne := fullRandomDensity(n)
	for _, v := range variants {
		count := density
		if v.terrain == board.TerrainMine && n == 16 {
			count--
		}
		if err := g.addTerrain(b, v, count, 0, last); err != nil {
			return nil, err
		}
	}
	treasure := density * 2
	if addOne {
		for _, t := range []board.Terrain{board.TerrainRocks, board.TerrainTrees, board.TerrainMine} {
			if err := g.addTerrain(b, terrainVariant{t, true}, 1, 0, last); err != nil {
				return nil, err
			}
		}
		treasure++
	}
	if err := g.addTreasure(b, treasure, 0, last); err != nil {
		return nil, err
	}

	white, err := g.randomEmpty(b, 0, half-1-n, nil)
	if err != nil {
		return nil, err
	}
	white.SetPiece(board.King, true)
	black, err := g.randomEmpty(b, half-1+n, last, nil)
	if err != nil {
		return nil, err
	}
	black.SetPiece(board.King, false)

	return g.finish(b, false), nil
}

func (g *Generator) finish(b *board.Board, mirrored bool) *Map {
	seed := board.EncodeSeed(b, mirrored)
	g.log.WithFields(logrus.Fields{
		"size":     b.Size(),
		"mirrored": mirrored,
		"seed":     seed,
	}).Debug("map generated")
	return &Map{Board: b, Seed: seed}
}

func (g *Generator) addTerrain(b *board.Board, v terrainVariant, count, lo, hi int) error {
	for i := 0; i < count; i++ {
		var candidates []*board.Square
		for id := lo; id <= hi; id++ {
			sq := b.Square(id)
			if sq.Terrain == board.TerrainNone && isGrass(sq) == v.grass {
				candidates = append(candidates, sq)
			}
		}
		if len(candidates) == 0 {
			return fmt.Errorf("%w: %s in ids %d-%d", ErrNoRoom, v.terrain, lo, hi)
		}
		candidates[g.rng.Intn(len(candidates))].Terrain = v.terrain
	}
	return nil
}

func (g *Generator) addTreasure(b *board.Board, count, lo, hi int) error {
	for i := 0; i < count; i++ {
		sq, err := g.randomEmpty(b, lo, hi, nil)
		if err != nil {
			return err
		}
		sq.HasTreasure = true
	}
	return nil
}

// randomEmpty picks a plain square without piece or treasure in ids
// [lo, hi], skipping squares for which exclude returns true.
func (g *Generator) randomEmpty(b *board.Board, lo, hi int, exclude func(*board.Square) bool) (*board.Square, error) {
	var candidates []*board.Square
	for id := lo; id <= hi; id++ {
		sq := b.Square(id)
		if !isEmpty(sq) || (exclude != nil && exclude(sq)) {
			continue
		}
		candidates = append(candidates, sq)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: empty square in ids %d-%d", ErrNoRoom, lo, hi)
	}
	return candidates[g.rng.Intn(len(candidates))], nil
}

func isEmpty(sq *board.Square) bool {
	return sq.Terrain == board.TerrainNone && !sq.HasTreasure && !sq.HasPiece()
}

func countPlain(b *board.Board) int {
	n := 0
	for _, sq := range b.Squares() {
		if sq.Terrain == board.TerrainNone {
			n++
		}
	}
	return n
}
