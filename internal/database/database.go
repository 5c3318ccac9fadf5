package database

import (
	"path/filepath"

	"github.com/inovacc/tablr/internal/encoding"
	"github.com/inovacc/tablr/internal/params"
	"github.com/inovacc/tablr/internal/state"
)

// Store persists the application snapshot under a fixed root key.
type Store interface {
	Ping() error

	// LoadSnapshot returns the saved snapshot, or nil when none exists.
	LoadSnapshot() (*state.Snapshot, error)

	// SaveSnapshot stamps the snapshot with a fresh revision UID and
	// timestamp and writes it, replacing any previous one.
	SaveSnapshot(snap *state.Snapshot) error

	Close() error
}

// DefaultPath returns the snapshot database location inside the app data
// directory. The extension depends on the backend selected at build time.
func DefaultPath() string {
	return filepath.Join(params.AppdataDir, "tablr"+storeExt)
}

// Open opens the backend selected at build time: BoltDB by default,
// SQLite with -tags sqlite. The parent directory is created if needed.
func Open(path string) (Store, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	return initDB(path)
}
