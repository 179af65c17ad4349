// Package store persists repository scan results between runs. A broken
// or stale cache never fails a scan, it only stops saving time.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var bucketScans = []byte("scans")

type Cache struct {
	db  *bbolt.DB
	ttl time.Duration
}

// Open opens the cache database at path, creating it if needed. Entries
// older than ttl count as misses; a zero ttl disables expiry.
func Open(path string, ttl time.Duration) (*Cache, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open scan cache: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketScans); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketScans, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{db: db, ttl: ttl}, nil
}

type scanEntry struct {
	Repos     []string `json:"repos"`
	ScannedAt int64    `json:"scanned_at"`
}

// Get returns the cached repository list for a root and scan mode.
// Missing, damaged and expired entries all report a miss.
func (c *Cache) Get(root string, subLevel bool) ([]string, bool) {
	var entry scanEntry
	found := false
	c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketScans).Get(scanKey(root, subLevel))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil
		}
		found = true
		return nil
	})
	if !found {
		return nil, false
	}
	if c.ttl > 0 && time.Since(time.Unix(entry.ScannedAt, 0)) > c.ttl {
		return nil, false
	}
	return entry.Repos, true
}

// Put records a completed scan for a root and scan mode.
func (c *Cache) Put(root string, subLevel bool, repos []string) error {
	entry := scanEntry{
		Repos:     repos,
		ScannedAt: time.Now().Unix(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketScans).Put(scanKey(root, subLevel), data)
	})
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func scanKey(root string, subLevel bool) []byte {
	if subLevel {
		return []byte("sub:" + root)
	}
	return []byte("top:" + root)
}
