package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSeed is returned when a map seed cannot be decoded.
var ErrInvalidSeed = errors.New("invalid map seed")

// Seed prefixes.
const (
	SeedMirrored = "m"
	SeedFull     = "r"
)

// EncodeSeed serialises the board's map (terrain, treasure and kings) to a
// seed string of the form "<m|r>_<n>x<n>_<body>".
//
// The body walks squares in id order. A digit 1-9 stands for that many plain
// squares; otherwise one letter per square: 'k' king, 't' treasure,
// 'm' mine, 'r' rocks, 'f' forest. A mirrored seed only covers the first
// half of the board; the second half is its point reflection.
// Pieces other than kings and mine ownership are not part of a map.
func EncodeSeed(b *Board, mirrored bool) string {
	n := b.size
	limit := n * n
	prefix := SeedFull
	if mirrored {
		limit /= 2
		prefix = SeedMirrored
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s_%dx%d_", prefix, n, n)

	run := 0
	for id := 0; id < limit; id++ {
		c := seedChar(b.squares[id])
		if c == 0 {
			run++
			if run == 9 {
				sb.WriteByte('9')
				run = 0
			}
			continue
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
			run = 0
		}
		sb.WriteByte(c)
	}
	if run > 0 {
		sb.WriteString(strconv.Itoa(run))
	}

	return sb.String()
}

// seedChar returns the body letter for sq, or 0 for a plain square.
func seedChar(sq *Square) byte {
	switch {
	case sq.Piece == King:
		return 'k'
	case sq.HasTreasure:
		return 't'
	case sq.Terrain != TerrainNone:
		return sq.Terrain.Char()
	default:
		return 0
	}
}

// DecodeSeed builds a board from a seed produced by EncodeSeed. Kings in
// the first half of the ids are White, the rest Black. White is to move and
// both gold balances are zero.
func DecodeSeed(seed string) (*Board, error) {
	parts := strings.SplitN(strings.TrimSpace(seed), "_", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %q: want <m|r>_<n>x<n>_<body>", ErrInvalidSeed, seed)
	}

	var mirrored bool
	switch parts[0] {
	case SeedMirrored:
		mirrored = true
	case SeedFull:
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidSeed, parts[0])
	}

	n, err := parseSeedSize(parts[1])
	if err != nil {
		return nil, err
	}
	if mirrored && n%2 != 0 {
		return nil, fmt.Errorf("%w: mirrored map needs an even size, got %d", ErrInvalidSeed, n)
	}

	if strings.IndexByte(parts[2], 'k') < 0 {
		return nil, fmt.Errorf("%w: no king in %q", ErrInvalidSeed, parts[2])
	}

	b := NewEmptyBoard(n)
	limit := n * n
	if mirrored {
		limit /= 2
	}

	id := 0
	for i := 0; i < len(parts[2]); i++ {
		c := parts[2][i]
		if c >= '1' && c <= '9' {
			id += int(c - '0')
			if id > limit {
				return nil, fmt.Errorf("%w: body overruns %d squares", ErrInvalidSeed, limit)
			}
			continue
		}
		if id >= limit {
			return nil, fmt.Errorf("%w: body overruns %d squares", ErrInvalidSeed, limit)
		}

		sq := b.squares[id]
		switch c {
		case 'k':
			sq.SetPiece(King, id < n*n/2)
		case 't':
			sq.HasTreasure = true
		case 'm':
			sq.Terrain = TerrainMine
		case 'r':
			sq.Terrain = TerrainRocks
		case 'f':
			sq.Terrain = TerrainTrees
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidSeed, c, i)
		}
		id++
	}

	if mirrored {
		b.MirrorFirstHalf()
	}
	return b, nil
}

func parseSeedSize(s string) (int, error) {
	wh := strings.Split(s, "x")
	if len(wh) != 2 {
		return 0, fmt.Errorf("%w: bad dimensions %q", ErrInvalidSeed, s)
	}
	w, err := strconv.Atoi(wh[0])
	if err != nil {
		return 0, fmt.Errorf("%w: bad width %q", ErrInvalidSeed, wh[0])
	}
	h, err := strconv.Atoi(wh[1])
	if err != nil {
		return 0, fmt.Errorf("%w: bad height %q", ErrInvalidSeed, wh[1])
	}
	if w != h || w <= 0 {
		return 0, fmt.Errorf("%w: board must be square, got %dx%d", ErrInvalidSeed, w, h)
	}
	if w > MaxSize {
		return 0, fmt.Errorf("%w: size %d exceeds %d", ErrInvalidSeed, w, MaxSize)
	}
	return w, nil
}

// MirrorFirstHalf copies terrain, treasure and kings from the first half of
// the ids onto their point reflection (id i onto n*n-1-i). Reflected kings
// belong to Black. Other pieces in the second half are cleared.
func (b *Board) MirrorFirstHalf() {
	total := len(b.squares)
	for id := 0; id < total/2; id++ {
		src := b.squares[id]
		dst := b.squares[total-1-id]

		dst.Terrain = src.Terrain
		dst.HasTreasure = src.HasTreasure
		dst.OwnedBy = NoSide
		dst.ClearPiece()
		if src.Piece == King {
			dst.SetPiece(King, false)
		}
	}
	b.kingSquare = [2]*Square{}
}
