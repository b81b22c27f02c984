package database

import (
	"fmt"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"
)

// OpenBolt opens (or creates) the embedded single-file store at path.
// bbolt holds an exclusive file lock, so a second process waits up to one second and fails.
func OpenBolt(path string) (*bolt.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("bolt path cannot be empty")
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt store %s: %w", path, err)
	}
	slog.Info("Opened embedded bolt store.", slog.String("path", path))
	return db, nil
}

// CloseBolt closes the embedded store.
func CloseBolt(db *bolt.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		slog.Error("Failed to close bolt store", slog.String("error", err.Error()))
		return
	}
	slog.Info("Bolt store closed.")
}
