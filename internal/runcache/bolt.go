package runcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// Bolt implements Cache on a bbolt file, one JSON-encoded Entry per run
// ID.
type Bolt struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the cache database at path.
func OpenBolt(path string) (*Bolt, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Put(e Entry) error {
	encoded, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode run: %w", err)
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(e.ID), encoded)
	})
}

func (b *Bolt) Get(id string) (Entry, error) {
	var e Entry
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(id))
		if v == nil {
			return ErrRunNotFound
		}
		return json.Unmarshal(v, &e)
	})
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (b *Bolt) List() ([]Entry, error) {
	var all []Entry
	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(_, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}
			all = append(all, e)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(all)
	return all, nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
