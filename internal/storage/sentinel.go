package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SentinelPath returns the path of the end-request sentinel file for
// generation gen (gen < 0 means the un-numbered "end-request" file that
// stops the tuner after the generation currently running).
func SentinelPath(dir string, gen int) string {
	if gen < 0 {
		return filepath.Join(dir, "end-request")
	}
	return filepath.Join(dir, "end-request-"+strconv.Itoa(gen))
}

// CreateSentinel drops an empty sentinel file at path, signalling a running
// tuner to stop after its current generation. Safe to call even if the file
// already exists.
func CreateSentinel(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// SentinelExists reports whether the sentinel file at path is present.
func SentinelExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// RemoveSentinel deletes the sentinel file at path, ignoring a not-exist error.
func RemoveSentinel(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// PollSentinel polls path every interval until it appears or stop is closed,
// returning true if the sentinel appeared. The tuner's generation loop does
// not call it; it checks between generations with SentinelExists (see
// tuner.ShouldStop).
func PollSentinel(path string, interval time.Duration, stop <-chan struct{}) bool {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if SentinelExists(path) {
			return true
		}
		select {
		case <-stop:
			return false
		case <-ticker.C:
		}
	}
}
