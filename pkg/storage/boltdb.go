package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/burrowlabs/burrow/pkg/log"
	"github.com/burrowlabs/burrow/pkg/types"
	bolt "go.etcd.io/bbolt"
)

var (
	// Bucket names
	bucketIPCache      = []byte("ip_cache")
	bucketHostnameMaps = []byte("hostname_maps")
)

// BoltStore implements Store using BoltDB
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore creates a new BoltDB-backed store
func NewBoltStore(dataDir string) (*BoltStore, error) {
	dbPath := filepath.Join(dataDir, "burrow.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			bucketIPCache,
			bucketHostnameMaps,
		}

		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})

	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) GetCachedIP(provider string) (*types.CachedIP, bool) {
	var snapshot types.CachedIP
	if !s.getDocument(bucketIPCache, provider, &snapshot) {
		return nil, false
	}
	return &snapshot, true
}

func (s *BoltStore) PutCachedIP(provider string, snapshot *types.CachedIP) {
	s.putDocument(bucketIPCache, provider, snapshot)
}

func (s *BoltStore) GetHostnameMap(provider string) types.HostnameIPMap {
	m := types.HostnameIPMap{}
	s.getDocument(bucketHostnameMaps, provider, &m)
	return m
}

func (s *BoltStore) PutHostnameMap(provider string, m types.HostnameIPMap) {
	s.putDocument(bucketHostnameMaps, provider, m)
}

// getDocument reads and unmarshals one JSON document. A missing document,
// a failed read, and an unparsable document all report false so callers
// fall back to re-discovery instead of halting.
func (s *BoltStore) getDocument(bucket []byte, key string, out interface{}) bool {
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(key))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode document %s/%s: %w", bucket, key, err)
		}
		found = true
		return nil
	})
	if err != nil {
		log.Logger.Error().
			Err(err).
			Str("component", "storage").
			Str("bucket", string(bucket)).
			Str("key", key).
			Msg("Read failed, treating document as absent")
		return false
	}
	return found
}

// putDocument marshals and upserts one JSON document, pretty-printed so
// the database stays inspectable with bbolt's CLI tooling.
func (s *BoltStore) putDocument(bucket []byte, key string, value interface{}) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
	if err != nil {
		log.Logger.Error().
			Err(err).
			Str("component", "storage").
			Str("bucket", string(bucket)).
			Str("key", key).
			Msg("Write failed, document not persisted")
	}
}
