//go:build sqlite

package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/tablr/internal/encoding"
	"github.com/inovacc/tablr/internal/state"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const storeExt = ".sqlite"

// The snapshot table holds at most one row; writes replace it.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshot (
	id       INTEGER PRIMARY KEY CHECK (id = 1),
	uid      TEXT NOT NULL,
	saved_at TEXT NOT NULL,
	data     BLOB NOT NULL
);`

type sqliteStore struct {
	db *sql.DB
}

func initDB(path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()

		return nil, err
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()

		return nil, err
	}

	conn := &sqliteStore{db: db}

	if err := conn.Ping(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return conn, nil
}

func (s *sqliteStore) Ping() error {
	return s.db.Ping()
}

func (s *sqliteStore) LoadSnapshot() (*state.Snapshot, error) {
	var data []byte

	err := s.db.QueryRow("SELECT data FROM snapshot WHERE id = 1").Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return encoding.Unmarshal[state.Snapshot](data)
}

func (s *sqliteStore) SaveSnapshot(snap *state.Snapshot) error {
	snap.UID = uuid.New().String()
	snap.SavedAt = time.Now()

	data, err := encoding.Marshal(snap)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		"INSERT INTO snapshot (id, uid, saved_at, data) VALUES (1, ?, ?, ?) "+
			"ON CONFLICT(id) DO UPDATE SET uid = excluded.uid, saved_at = excluded.saved_at, data = excluded.data",
		snap.UID, snap.SavedAt.Format(time.RFC3339Nano), data,
	)

	return err
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
