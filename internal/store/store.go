// Package store persists entity collections as one JSON array file per
// collection inside a data directory.
//
// Every collection is guarded by its own mutex: reads, writes, and
// read-modify-write cycles via Mutate are serialized per collection, so
// concurrent handlers cannot clobber each other's updates.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection names.
const (
	Users    = "users"
	Links    = "links"
	Services = "services"
	Members  = "members"
)

type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	mu, ok := s.locks[collection]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[collection] = mu
	}
	return mu
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Exists reports whether the collection's backing file is present.
func (s *FileStore) Exists(collection string) bool {
	_, err := os.Stat(s.path(collection))
	return err == nil
}

// Read returns every record in the collection. A missing file reads as an
// empty collection; an unreadable or unparsable file is an error rather than
// an empty result, so data corruption cannot masquerade as data loss.
func Read[T any](s *FileStore, collection string) ([]T, error) {
	mu := s.lock(collection)
	mu.Lock()
	defer mu.Unlock()
	return readLocked[T](s, collection)
}

// Write replaces the entire collection.
func Write[T any](s *FileStore, collection string, records []T) error {
	mu := s.lock(collection)
	mu.Lock()
	defer mu.Unlock()
	return writeLocked(s, collection, records)
}

// Mutate applies fn to the current records and persists the result, holding
// the collection lock across the whole read-modify-write cycle. fn receives
// the stored records and returns the records to persist.
func Mutate[T any](s *FileStore, collection string, fn func([]T) ([]T, error)) ([]T, error) {
	mu := s.lock(collection)
	mu.Lock()
	defer mu.Unlock()

	records, err := readLocked[T](s, collection)
	if err != nil {
		return nil, err
	}

	updated, err := fn(records)
	if err != nil {
		return nil, err
	}

	if err := writeLocked(s, collection, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func readLocked[T any](s *FileStore, collection string) ([]T, error) {
	data, err := os.ReadFile(s.path(collection))
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse collection %s: %w", collection, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func writeLocked[T any](s *FileStore, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}

	// Write to a temp file and rename so a crash mid-write cannot leave a
	// truncated collection behind.
	path := s.path(collection)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}
