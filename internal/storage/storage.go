package storage

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Key prefixes. Kifu records and checkpoint-history snapshots share one
// badger instance, namespaced by prefix, the way the teacher's storage.go
// kept preferences and stats side by side in one db.
const (
	kifuPrefix       = "kifu/"
	checkpointPrefix = "ckpt-history/"
)

// Store wraps BadgerDB for the kifu archive and GA checkpoint history.
type Store struct {
	db *badger.DB
}

// NewStore opens (creating if needed) the badger database under
// GetDatabaseDir.
func NewStore() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return newStoreAt(dbDir)
}

// newStoreAt opens the badger database at an arbitrary directory; used
// directly by tests so they don't touch the real per-user data directory.
func newStoreAt(dbDir string) (*Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
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

// SaveKifu archives one match record's JSON-encoded bytes under id.
func (s *Store) SaveKifu(id string, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(kifuPrefix+id), data)
	})
}

// LoadKifu retrieves a previously archived match record by id.
func (s *Store) LoadKifu(id string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(kifuPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = append([]byte(nil), val...)
			return nil
		})
	})
	return data, err
}

// ListKifuIDs returns every archived kifu id, in key order.
func (s *Store) ListKifuIDs() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(kifuPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			ids = append(ids, string(key[len(prefix):]))
		}
		return nil
	})
	return ids, err
}

// SaveGenerationSnapshot archives one generation's population JSON, keyed by
// generation number, so the tuner's full run history survives even though
// population.json/best.json only ever hold the latest generation.
func (s *Store) SaveGenerationSnapshot(generation int, data []byte) error {
	key := fmt.Sprintf("%s%08d", checkpointPrefix, generation)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// LoadGenerationSnapshot retrieves a previously archived generation snapshot.
func (s *Store) LoadGenerationSnapshot(generation int) ([]byte, error) {
	key := fmt.Sprintf("%s%08d", checkpointPrefix, generation)
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = append([]byte(nil), val...)
			return nil
		})
	})
	return data, err
}
