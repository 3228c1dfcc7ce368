// Package fs provides a blob store backed by viant/afs, so executors can
// persist to any scheme afs understands (file, mem, s3, gs, ...).
package fs

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/drainly/storage"
)

// Store persists each key as one object under a base URL.
type Store struct {
	baseURL string
	fs      afs.Service
	mu      sync.RWMutex
}

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// New creates a store rooted at baseURL.
func New(baseURL string) *Store {
	return &Store{baseURL: baseURL, fs: afs.New()}
}

// Get returns the bytes stored under key, or storage.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	URL := s.objectURL(key)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", URL, err)
	}
	if !exists {
		return nil, storage.ErrNotFound
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", URL, err)
	}
	return data, nil
}

// Put stores data under key, overwriting any previous value.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	URL := s.objectURL(key)
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", URL, err)
	}
	return nil
}

// Delete removes key; absent keys are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	URL := s.objectURL(key)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", URL, err)
	}
	if !exists {
		return nil
	}
	if err := s.fs.Delete(ctx, URL); err != nil {
		return fmt.Errorf("failed to delete %s: %w", URL, err)
	}
	return nil
}

// Exists reports whether key holds a value.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exists, err := s.fs.Exists(ctx, s.objectURL(key))
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", s.objectURL(key), err)
	}
	return exists, nil
}

func (s *Store) objectURL(key string) string {
	return url.Join(s.baseURL, key+".bin")
}
