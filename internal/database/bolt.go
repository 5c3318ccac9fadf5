//go:build !sqlite

package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/tablr/internal/encoding"
	"github.com/inovacc/tablr/internal/state"
	"go.etcd.io/bbolt"
)

const (
	boltBucketState = "state" // key: "snapshot" -> Snapshot JSON

	boltKeySnapshot = "snapshot"

	storeExt = ".bolt"
)

type Bolt struct {
	db *bbolt.DB
}

func initDB(path string) (Store, error) {
	return NewBolt(path)
}

// NewBolt opens (creating if needed) a BoltDB snapshot store at path.
func NewBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketState))

		return err
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Ping() error {
	return b.db.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) LoadSnapshot() (*state.Snapshot, error) {
	var snap *state.Snapshot

	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucketState)).Get([]byte(boltKeySnapshot))

		var err error

		snap, err = encoding.Unmarshal[state.Snapshot](data)

		return err
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

func (b *Bolt) SaveSnapshot(snap *state.Snapshot) error {
	snap.UID = uuid.New().String()
	snap.SavedAt = time.Now()

	data, err := encoding.Marshal(snap)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketState)).Put([]byte(boltKeySnapshot), data)
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
