package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreKifuRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "ghoti-storage-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := newStoreAt(filepath.Join(tmpDir, "db"))
	if err != nil {
		t.Fatalf("newStoreAt: %v", err)
	}
	defer store.Close()

	if err := store.SaveKifu("match-1", []byte(`{"id":"match-1"}`)); err != nil {
		t.Fatalf("SaveKifu: %v", err)
	}
	if err := store.SaveKifu("match-2", []byte(`{"id":"match-2"}`)); err != nil {
		t.Fatalf("SaveKifu: %v", err)
	}

	data, err := store.LoadKifu("match-1")
	if err != nil {
		t.Fatalf("LoadKifu: %v", err)
	}
	if string(data) != `{"id":"match-1"}` {
		t.Fatalf("LoadKifu = %q, want the saved payload", data)
	}

	ids, err := store.ListKifuIDs()
	if err != nil {
		t.Fatalf("ListKifuIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("ListKifuIDs returned %d ids, want 2", len(ids))
	}
}

func TestStoreGenerationSnapshotRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "ghoti-storage-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := newStoreAt(filepath.Join(tmpDir, "db"))
	if err != nil {
		t.Fatalf("newStoreAt: %v", err)
	}
	defer store.Close()

	if err := store.SaveGenerationSnapshot(7, []byte("generation-7-payload")); err != nil {
		t.Fatalf("SaveGenerationSnapshot: %v", err)
	}
	data, err := store.LoadGenerationSnapshot(7)
	if err != nil {
		t.Fatalf("LoadGenerationSnapshot: %v", err)
	}
	if string(data) != "generation-7-payload" {
		t.Fatalf("LoadGenerationSnapshot = %q, want generation-7-payload", data)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "ghoti-storage-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "best.json")
	if err := WriteFileAtomic(path, []byte(`{"fitness":1}`), 0644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != `{"fitness":1}` {
		t.Fatalf("content = %q, want the written payload", data)
	}

	// A second write must replace the file, not append or corrupt it.
	if err := WriteFileAtomic(path, []byte(`{"fitness":2}`), 0644); err != nil {
		t.Fatalf("WriteFileAtomic (overwrite): %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != `{"fitness":2}` {
		t.Fatalf("content after overwrite = %q, want the replaced payload", data)
	}
}

func TestSentinel(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "ghoti-storage-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := SentinelPath(tmpDir, 3)
	if SentinelExists(path) {
		t.Fatal("sentinel should not exist yet")
	}
	if err := CreateSentinel(path); err != nil {
		t.Fatalf("CreateSentinel: %v", err)
	}
	if !SentinelExists(path) {
		t.Fatal("sentinel should exist after CreateSentinel")
	}
	if err := RemoveSentinel(path); err != nil {
		t.Fatalf("RemoveSentinel: %v", err)
	}
	if SentinelExists(path) {
		t.Fatal("sentinel should not exist after RemoveSentinel")
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("data directory was not created: %s", dataDir)
	}
}
