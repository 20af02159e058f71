// Package storage archives games in a BadgerDB database.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Storage keys
const (
	keyGamePrefix = "game/"
)

// GameRecord is an archived game: where it started, the moves committed
// from there and how it stood when saved.
type GameRecord struct {
	ID       string    `json:"id"`
	StartFEN string    `json:"start_fen"`
	Moves    []string  `json:"moves"`
	FinalFEN string    `json:"final_fen"`
	Status   string    `json:"status"`
	Result   string    `json:"result"`
	SavedAt  time.Time `json:"saved_at"`
}

// Finished reports whether the game had a result when saved.
func (r *GameRecord) Finished() bool {
	return r.Result != "" && r.Result != "*"
}

// ArchiveStats summarises the results of archived games.
type ArchiveStats struct {
	Games      int `json:"games"`
	WhiteWins  int `json:"white_wins"`
	BlackWins  int `json:"black_wins"`
	Draws      int `json:"draws"`
	Unfinished int `json:"unfinished"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (creating if needed) the archive in dir.
func Open(dir string) (*Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("archive directory not set: %w", errors.ErrInvalidConfig)
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens an archive that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(keyGamePrefix + id)
}

// SaveGame stores rec under its ID, replacing any earlier version.
func (s *Storage) SaveGame(rec *GameRecord) error {
	if rec.ID == "" || strings.ContainsAny(rec.ID, "/\n") {
		return fmt.Errorf("invalid game id %q: %w", rec.ID, errors.ErrInvalidConfig)
	}
	if rec.SavedAt.IsZero() {
		rec.SavedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
}

// LoadGame loads the game stored under id. A missing game is ErrGameNotFound.
func (s *Storage) LoadGame(id string) (*GameRecord, error) {
	rec := &GameRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("game %q: %w", id, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteGame removes the game stored under id.
func (s *Storage) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(id)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("game %q: %w", id, errors.ErrGameNotFound)
			}
			return err
		}
		return txn.Delete(gameKey(id))
	})
}

// ListGames returns the ids of all archived games in sorted order.
func (s *Storage) ListGames() ([]string, error) {
	var ids []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyGamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			ids = append(ids, strings.TrimPrefix(key, keyGamePrefix))
		}
		return nil
	})

	sort.Strings(ids)
	return ids, err
}

// Stats tallies the results of every archived game.
func (s *Storage) Stats() (*ArchiveStats, error) {
	stats := &ArchiveStats{}

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyGamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec GameRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}

			stats.Games++
			switch rec.Result {
			case "1-0":
				stats.WhiteWins++
			case "0-1":
				stats.BlackWins++
			case "1/2-1/2":
				stats.Draws++
			default:
				stats.Unfinished++
			}
		}
		return nil
	})

	return stats, err
}
