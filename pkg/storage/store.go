package storage

import (
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/NihalDR/Lingam-Aabharanam/pkg/logger"
)

const (
	bucketName = "collections"
	probeKey   = "health_check_probe"
)

// Store wraps an embedded key-value database holding one JSON-encoded
// collection per key. A Store whose database could not be opened still
// works: reads return empty collections and writes are no-ops, so callers
// keep functioning without durability.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the database file at path. On failure it logs
// the error and returns a degraded Store instead of failing hard.
func Open(path string) *Store {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		logger.GetLogger().Error("Failed to open store, continuing without persistence",
			zap.String("path", path),
			zap.Error(err))
		return &Store{}
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		logger.GetLogger().Error("Failed to create store bucket, continuing without persistence",
			zap.String("path", path),
			zap.Error(err))
		_ = db.Close()
		return &Store{}
	}

	return &Store{db: db}
}

// Available reports whether the underlying database is usable.
func (s *Store) Available() bool {
	return s.db != nil
}

// Close closes the underlying database if it was opened.
func (s *Store) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

// Read returns the collection stored under key. A missing key, an
// unavailable database or a corrupted value all yield an empty result;
// the failure is logged, never propagated.
func Read[T any](s *Store, key string) []T {
	raw := s.get(key)
	if raw == nil {
		return nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.GetLogger().Error("Failed to decode stored collection",
			zap.String("key", key),
			zap.Error(err))
		return nil
	}
	return items
}

// Write replaces the collection stored under key. It reports whether the
// value was persisted; failures are logged and swallowed.
func Write[T any](s *Store, key string, items []T) bool {
	data, err := json.Marshal(items)
	if err != nil {
		logger.GetLogger().Error("Failed to encode collection",
			zap.String("key", key),
			zap.Error(err))
		return false
	}
	return s.put(key, data)
}

// Remove deletes the collection stored under key.
func (s *Store) Remove(key string) bool {
	if s.db == nil {
		return false
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
	if err != nil {
		logger.GetLogger().Error("Failed to remove stored collection",
			zap.String("key", key),
			zap.Error(err))
		return false
	}
	return true
}

// Probe verifies the database accepts writes by storing and deleting a
// sentinel key.
func (s *Store) Probe() bool {
	if !s.put(probeKey, []byte("ok")) {
		return false
	}
	return s.Remove(probeKey)
}

func (s *Store) get(key string) []byte {
	if s.db == nil {
		return nil
	}
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(key)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		logger.GetLogger().Error("Failed to read stored collection",
			zap.String("key", key),
			zap.Error(err))
		return nil
	}
	return raw
}

func (s *Store) put(key string, data []byte) bool {
	if s.db == nil {
		return false
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), data)
	})
	if err != nil {
		logger.GetLogger().Error("Failed to write stored collection",
			zap.String("key", key),
			zap.Error(err))
		return false
	}
	return true
}
