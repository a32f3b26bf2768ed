// Package storage provides the persisted string-keyed blob store backends
// the recipe cache writes through: a retrying Redis client, an embedded
// Badger store, and an in-memory implementation for tests and demos.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Backend.Get when the key has no value.
var ErrKeyNotFound = errors.New("storage: key not found")

// Backend is the external persisted key-value store contract. Values are
// opaque text blobs; the cache layer owns serialization.
type Backend interface {
	// Get retrieves the value for key. Returns ErrKeyNotFound on a miss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any existing value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// Verify interface implementations at compile time
var (
	_ Backend = (*RedisBackend)(nil)
	_ Backend = (*BadgerBackend)(nil)
	_ Backend = (*MemoryBackend)(nil)
)
