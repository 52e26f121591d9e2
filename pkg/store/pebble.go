// Package store wraps an embedded Pebble database as an ordered key-value
// store: point get/set/delete plus ascending prefix scans over composite
// string keys. A *Store is opened once at startup and passed explicitly to
// the layers above; there is no package-global handle, so tests open their
// own store on a temp dir.
package store

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	"chatkv/pkg/logger"
)

// Store is a handle to an open Pebble database.
type Store struct {
	db   *pebble.DB
	path string
}

// Entry is one key/value pair returned by a prefix scan.
type Entry struct {
	Key   string
	Value []byte
}

// Open opens (or creates) a Pebble database at the given path.
func Open(path string) (*Store, error) {
	logger.Info("opening_pebble_db", "path", path)
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		logger.Error("pebble_open_failed", "path", path, "error", err)
		return nil, err
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database. The store is unusable afterwards.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	logger.Info("pebble_closed", "path", s.path)
	return err
}

// Ready reports whether the store is opened and usable.
func (s *Store) Ready() bool {
	return s != nil && s.db != nil
}

// Get returns the value for key. The boolean reports whether the key was
// found; a missing key is not an error.
func (s *Store) Get(key string) ([]byte, bool, error) {
	if s.db == nil {
		return nil, false, fmt.Errorf("store not opened")
	}
	v, closer, err := s.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	out := append([]byte(nil), v...)
	if closer != nil {
		_ = closer.Close()
	}
	return out, true, nil
}

// Set writes a key/value pair synchronously.
func (s *Store) Set(key string, value []byte) error {
	if s.db == nil {
		return fmt.Errorf("store not opened")
	}
	return s.db.Set([]byte(key), value, pebble.Sync)
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if s.db == nil {
		return fmt.Errorf("store not opened")
	}
	return s.db.Delete([]byte(key), pebble.Sync)
}

// ScanPrefix returns every entry whose key starts with prefix, in ascending
// key order. Values are copied out of the iterator.
func (s *Store) ScanPrefix(prefix string) ([]Entry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("store not opened")
	}
	pfx := []byte(prefix)
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	var out []Entry
	for iter.SeekGE(pfx); iter.Valid(); iter.Next() {
		if !bytes.HasPrefix(iter.Key(), pfx) {
			break
		}
		k := append([]byte(nil), iter.Key()...)
		v := append([]byte(nil), iter.Value()...)
		out = append(out, Entry{Key: string(k), Value: v})
	}
	return out, iter.Error()
}

// ScanKeys returns the keys under prefix in ascending order, without
// copying values.
func (s *Store) ScanKeys(prefix string) ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("store not opened")
	}
	pfx := []byte(prefix)
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	var out []string
	for iter.SeekGE(pfx); iter.Valid(); iter.Next() {
		if !bytes.HasPrefix(iter.Key(), pfx) {
			break
		}
		k := append([]byte(nil), iter.Key()...)
		out = append(out, string(k))
	}
	return out, iter.Error()
}

// DeletePrefix deletes every key under prefix, one key at a time, and
// returns how many were deleted. The sequence is not atomic; an error
// partway leaves earlier deletions in place.
func (s *Store) DeletePrefix(prefix string) (int, error) {
	ks, err := s.ScanKeys(prefix)
	if err != nil {
		return 0, err
	}
	for i, k := range ks {
		if err := s.Delete(k); err != nil {
			return i, err
		}
	}
	return len(ks), nil
}
