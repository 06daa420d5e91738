package kifu

import (
	"encoding/json"

	"github.com/sorapuyo/ghoti/internal/storage"
)

// SaveToStore archives a 2P session under its own ID in the badger-backed
// kifu archive, alongside (or instead of) the flat-file export.
func (r SimulateResult2P) SaveToStore(store *storage.Store) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return store.SaveKifu(r.ID, data)
}

// SaveToStore archives a 1P session under its own ID in the badger-backed
// kifu archive.
func (r SimulateResult1P) SaveToStore(store *storage.Store) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return store.SaveKifu(r.ID, data)
}
