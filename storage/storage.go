// Package storage persists encoded executors and exposes the fast paths
// their encoding permits: appending one task and probing the queue length,
// both without decoding the stored tasks.
package storage

import (
	"context"
	"errors"
)

// Common, reusable storage errors.  Sentinel variables let callers detect
// conditions via errors.Is instead of brittle string comparisons.
var (
	// ErrNotFound is returned when the requested key holds no value.
	ErrNotFound = errors.New("storage: not found")
)

// Store is the blob contract drainly requires from a host storage engine.
type Store interface {
	// Get returns the bytes stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores data under key, overwriting any previous value.
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes key; deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Exists reports whether key holds a value.
	Exists(ctx context.Context, key string) (bool, error)
}
