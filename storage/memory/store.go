// Package memory provides an in-memory blob store.  It is the default
// vendor for tests and for deterministic single-process hosts.
package memory

import (
	"context"
	"sync"

	"github.com/viant/drainly/storage"
)

// Store keeps blobs in a mutex-guarded map keyed by string.  Returned and
// stored slices are copied so callers cannot alias the internal state.
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{records: make(map[string][]byte)}
}

// Get returns the bytes stored under key, or storage.ErrNotFound.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.records[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Put stores data under key, overwriting any previous value.
func (s *Store) Put(_ context.Context, key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = stored
	return nil
}

// Delete removes key; absent keys are a no-op.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}

// Exists reports whether key holds a value.
func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[key]
	return ok, nil
}
