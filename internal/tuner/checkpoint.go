package tuner

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sorapuyo/ghoti/internal/storage"
)

// populationFileName and bestFileName are the flat checkpoint files a
// running tuner keeps in GetCheckpointDir, mirroring pop.json and
// best/pop_<gen>.json.
const (
	populationFileName = "population.json"
	bestFileName        = "best.json"
)

// SaveCheckpoint atomically replaces population.json and best.json in dir
// and archives the full population under its generation number in store
// (so run history survives even though the flat files only ever hold the
// latest generation).
func SaveCheckpoint(dir string, store *storage.Store, pop Population) error {
	data, err := json.Marshal(pop)
	if err != nil {
		return err
	}
	if err := storage.WriteFileAtomic(filepath.Join(dir, populationFileName), data, 0644); err != nil {
		return err
	}

	best, err := json.Marshal(pop.Members[0])
	if err != nil {
		return err
	}
	if err := storage.WriteFileAtomic(filepath.Join(dir, bestFileName), best, 0644); err != nil {
		return err
	}

	if store != nil {
		if err := store.SaveGenerationSnapshot(pop.Generation, data); err != nil {
			return err
		}
	}
	return nil
}

// LoadCheckpoint reads population.json from dir, returning ok=false if it
// doesn't exist or fails to parse (the caller should fall back to a fresh
// NewPopulation, matching pop.json's "invalid data" fallback).
func LoadCheckpoint(dir string) (pop Population, ok bool) {
	data, err := os.ReadFile(filepath.Join(dir, populationFileName))
	if err != nil {
		return Population{}, false
	}
	if err := json.Unmarshal(data, &pop); err != nil {
		return Population{}, false
	}
	return pop, true
}

// ShouldStop reports whether a shutdown sentinel has been dropped for this
// generation, or the un-numbered end-request sentinel, removing whichever
// one it finds so a later run starts clean.
func ShouldStop(dir string, generation int) bool {
	for _, path := range []string{storage.SentinelPath(dir, generation), storage.SentinelPath(dir, -1)} {
		if storage.SentinelExists(path) {
			storage.RemoveSentinel(path)
			return true
		}
	}
	return false
}
