// Package config holds runtime settings: defaults or the saved settings,
// then environment, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Map kinds.
const (
	MapMirrored = "mirrored"
	MapRandom   = "random"
)

// Board size limits accepted by the map generator.
const (
	MinBoardSize = 6
	MaxBoardSize = 16
)

// ErrInvalidSettings is returned by Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings stores everything the binary needs to start.
type Settings struct {
	BoardSize int    `json:"board_size"`
	MapKind   string `json:"map_kind"`
	MapSeed   int64  `json:"map_seed"` // 0 means time based
	WhiteGold int    `json:"white_gold"`
	BlackGold int    `json:"black_gold"`

	DataDir  string `json:"data_dir"` // empty means the platform data dir
	InMemory bool   `json:"in_memory"`

	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		BoardSize: 12,
		MapKind:   MapMirrored,
		WhiteGold: 0,
		BlackGold: 10,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// FromEnv overlays AOC_* environment variables on s. LOG_LEVEL and
// LOG_FORMAT are honoured as well so the logger and the binary agree.
func FromEnv(s Settings) (Settings, error) {
	return fromLookup(s, os.LookupEnv)
}

func fromLookup(s Settings, lookup func(string) (string, bool)) (Settings, error) {
	var errs []error

	atoi := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	atoi("AOC_BOARD_SIZE", &s.BoardSize)
	str("AOC_MAP_KIND", &s.MapKind)
	if v, ok := lookup("AOC_MAP_SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("AOC_MAP_SEED: %w", err))
		} else {
			s.MapSeed = n
		}
	}
	atoi("AOC_WHITE_GOLD", &s.WhiteGold)
	atoi("AOC_BLACK_GOLD", &s.BlackGold)
	str("AOC_DATA_DIR", &s.DataDir)
	if v, ok := lookup("AOC_IN_MEMORY"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("AOC_IN_MEMORY: %w", err))
		} else {
			s.InMemory = b
		}
	}
	str("LOG_LEVEL", &s.LogLevel)
	str("LOG_FORMAT", &s.LogFormat)

	return s, errors.Join(errs...)
}

// RegisterFlags binds flags on fs to the fields of s. Current values act as
// flag defaults, so call it after FromEnv.
func (s *Settings) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&s.BoardSize, "size", s.BoardSize, "board size (even, 6-16)")
	fs.StringVar(&s.MapKind, "map", s.MapKind, "map kind: mirrored or random")
	fs.Int64Var(&s.MapSeed, "seed", s.MapSeed, "map RNG seed (0 = time based)")
	fs.IntVar(&s.WhiteGold, "white-gold", s.WhiteGold, "starting gold for white")
	fs.IntVar(&s.BlackGold, "black-gold", s.BlackGold, "starting gold for black")
	fs.StringVar(&s.DataDir, "data", s.DataDir, "database directory")
	fs.BoolVar(&s.InMemory, "memory", s.InMemory, "keep the database in memory")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level")
	fs.StringVar(&s.LogFormat, "log-format", s.LogFormat, "log format: text or json")
}

// Layer overlays the environment and then args on base. Flags are
// registered on fs. An environment error is returned only if the flags
// parse, since the caller usually wants to report the fatal one.
func Layer(base Settings, fs *flag.FlagSet, args []string) (Settings, error) {
	s, envErr := FromEnv(base)
	s.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return s, err
	}
	return s, envErr
}

// Validate checks field ranges.
func (s Settings) Validate() error {
	var errs []error
	if s.BoardSize < MinBoardSize || s.BoardSize > MaxBoardSize || s.BoardSize%2 != 0 {
		errs = append(errs, fmt.Errorf("board size %d: want an even size in [%d,%d]", s.BoardSize, MinBoardSize, MaxBoardSize))
	}
	if s.MapKind != MapMirrored && s.MapKind != MapRandom {
		errs = append(errs, fmt.Errorf("map kind %q: want %s or %s", s.MapKind, MapMirrored, MapRandom))
	}
	if s.WhiteGold < 0 || s.BlackGold < 0 {
		errs = append(errs, fmt.Errorf("negative starting gold %d/%d", s.WhiteGold, s.BlackGold))
	}
	if f := strings.ToLower(s.LogFormat); f != "text" && f != "json" {
		errs = append(errs, fmt.Errorf("log format %q: want text or json", s.LogFormat))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}
