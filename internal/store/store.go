// Package store persists named board snapshots in BadgerDB.
package store

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/easychess-go/internal/chess"
	"github.com/lgbarn/easychess-go/internal/errors"
)

// keyPrefix namespaces board records.
const keyPrefix = "board/"

// Record is the stored form of a board.
type Record struct {
	Name    string    `json:"name"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Board   string    `json:"board"`
	SavedAt time.Time `json:"saved_at"`
}

// Store wraps BadgerDB for board snapshots.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) a store in dir.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "store dir"}
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a store that is discarded on Close.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening board store")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func key(name string) []byte {
	return []byte(keyPrefix + name)
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "board name", Value: name}
	}
	return nil
}

// Save stores b under name, replacing any earlier board of that name.
func (s *Store) Save(name string, b *chess.Board) error {
	if err := checkName(name); err != nil {
		return err
	}
	data, err := json.Marshal(Record{
		Name:    name,
		Width:   b.Width(),
		Height:  b.Height(),
		Board:   b.Render(),
		SavedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), data)
	})
}

// Get returns the record stored under name.
func (s *Store) Get(name string) (*Record, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err == badger.ErrKeyNotFound {
			return errors.Wrapf(errors.ErrNotFound, "board %q", name)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Load returns the board stored under name.
func (s *Store) Load(name string) (*chess.Board, error) {
	rec, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	b, err := chess.ParseBoard(rec.Board)
	if err != nil {
		return nil, errors.Wrapf(err, "stored board %q", name)
	}
	if b.Width() != rec.Width || b.Height() != rec.Height {
		return nil, errors.Wrapf(errors.ErrInconsistentRow, "stored board %q is %dx%d, record says %dx%d",
			name, b.Width(), b.Height(), rec.Width, rec.Height)
	}
	return b, nil
}

// Delete removes the board stored under name.
func (s *Store) Delete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(name)); err == badger.ErrKeyNotFound {
			return errors.Wrapf(errors.ErrNotFound, "board %q", name)
		} else if err != nil {
			return err
		}
		return txn.Delete(key(name))
	})
}

// List returns the stored board names in ascending order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyPrefix))
		}
		return nil
	})
	return names, err
}
