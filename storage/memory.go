package storage

import (
	"context"
	"sync"
)

// MemoryBackend is a map-backed Backend for tests and demos. It supports
// fault injection so degradation paths can be exercised without a real
// backend outage.
type MemoryBackend struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool

	// failNext, when non-nil, is returned by the next operation and then
	// cleared.
	failNext error
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		data: make(map[string]string),
	}
}

// FailNext arranges for the next backend operation to fail with err
func (mb *MemoryBackend) FailNext(err error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.failNext = err
}

// takeInjectedFailure returns and clears the injected failure, if any.
// Caller must hold mu.
func (mb *MemoryBackend) takeInjectedFailure() error {
	err := mb.failNext
	mb.failNext = nil
	return err
}

// Get retrieves the value for key
func (mb *MemoryBackend) Get(ctx context.Context, key string) (string, error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	if err := mb.takeInjectedFailure(); err != nil {
		return "", err
	}

	value, ok := mb.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key
func (mb *MemoryBackend) Set(ctx context.Context, key, value string) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	if err := mb.takeInjectedFailure(); err != nil {
		return err
	}

	mb.data[key] = value
	return nil
}

// Delete removes the given keys
func (mb *MemoryBackend) Delete(ctx context.Context, keys ...string) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	if err := mb.takeInjectedFailure(); err != nil {
		return err
	}

	for _, key := range keys {
		delete(mb.data, key)
	}
	return nil
}

// Ping reports backend availability
func (mb *MemoryBackend) Ping(ctx context.Context) error {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	return nil
}

// Close marks the backend closed
func (mb *MemoryBackend) Close() error {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.closed = true
	return nil
}

// Len reports the number of stored keys
func (mb *MemoryBackend) Len() int {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	return len(mb.data)
}

// Keys returns a snapshot of the stored keys
func (mb *MemoryBackend) Keys() []string {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	keys := make([]string, 0, len(mb.data))
	for k := range mb.data {
		keys = append(keys, k)
	}
	return keys
}
