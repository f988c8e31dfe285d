package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hailam/ageofchess/internal/board"
	"github.com/hailam/ageofchess/internal/config"
	"github.com/hailam/ageofchess/internal/logger"
)

// Storage keys
const (
	keySettings    = "settings"
	keyFirstLaunch = "first_launch"
	boardPrefix    = "board/"
)

// ErrNotFound is returned when a saved board does not exist.
var ErrNotFound = errors.New("not found")

// SavedBoard is a stored board with its metadata.
type SavedBoard struct {
	ID       string         `json:"id"`
	Seed     string         `json:"seed"`
	SavedAt  time.Time      `json:"saved_at"`
	Snapshot board.Snapshot `json:"snapshot"`
}

// BoardInfo is the listing entry for a saved board.
type BoardInfo struct {
	ID      string    `json:"id"`
	Seed    string    `json:"seed"`
	Size    int       `json:"size"`
	SavedAt time.Time `json:"saved_at"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db  *badger.DB
	log *logrus.Entry
}

// Open opens (or creates) the database in dir. An empty dir selects the
// platform data directory.
func Open(dir string) (*Storage, error) {
	dbDir, err := GetDatabaseDir(dir)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // Disable badger's own logging

	s, err := open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbDir, err)
	}
	s.log.WithField("dir", dbDir).Info("database opened")
	return s, nil
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db, log: logger.Component("storage")}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SaveSettings saves the runtime settings
func (s *Storage) SaveSettings(settings config.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySettings), data)
	})
}

// LoadSettings loads the saved settings, returns defaults if not found
func (s *Storage) LoadSettings() (config.Settings, error) {
	settings := config.Default()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySettings))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &settings)
		})
	})

	return settings, err
}

// SaveBoard stores a snapshot of b under a new id and returns the id.
// Mirrored selects the seed form recorded alongside the snapshot.
func (s *Storage) SaveBoard(b *board.Board, mirrored bool) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	rec := SavedBoard{
		ID:       id.String(),
		Seed:     board.EncodeSeed(b, mirrored),
		SavedAt:  time.Now().UTC(),
		Snapshot: b.Snapshot(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(boardPrefix+rec.ID), data)
	})
	if err != nil {
		return "", fmt.Errorf("save board: %w", err)
	}
	s.log.WithFields(logrus.Fields{"id": rec.ID, "seed": rec.Seed}).Debug("board saved")
	return rec.ID, nil
}

// LoadBoard returns the saved record and the rebuilt board for id.
func (s *Storage) LoadBoard(id string) (*SavedBoard, *board.Board, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, fmt.Errorf("board %q: %w", id, ErrNotFound)
	}

	var rec SavedBoard
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(boardPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("board %s: %w", id, ErrNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, nil, err
	}

	b, err := board.FromSnapshot(rec.Snapshot)
	if err != nil {
		return nil, nil, fmt.Errorf("board %s: %w", id, err)
	}
	return &rec, b, nil
}

// DeleteBoard removes a saved board.
func (s *Storage) DeleteBoard(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(boardPrefix + id)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("board %s: %w", id, ErrNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// ListBoards returns every saved board, oldest first. Ids are UUIDv7, so
// key order is save order.
func (s *Storage) ListBoards() ([]BoardInfo, error) {
	var out []BoardInfo

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(boardPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec SavedBoard
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			out = append(out, BoardInfo{
				ID:      rec.ID,
				Seed:    rec.Seed,
				Size:    rec.Snapshot.Size,
				SavedAt: rec.SavedAt,
			})
		}
		return nil
	})

	return out, err
}
