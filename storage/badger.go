package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerConfig holds configuration for the embedded Badger backend
type BadgerConfig struct {
	// Dir is the directory holding the Badger database files. Empty means
	// in-memory operation (nothing survives the process).
	Dir string `json:"dir"`

	// SyncWrites forces an fsync after every write. Slower but safer.
	SyncWrites bool `json:"sync_writes"`
}

// DefaultBadgerConfig returns a BadgerConfig rooted at dir
func DefaultBadgerConfig(dir string) *BadgerConfig {
	return &BadgerConfig{
		Dir:        dir,
		SyncWrites: false,
	}
}

// BadgerBackend implements Backend using an embedded Badger database.
// It is the local-storage analog for deployments without a Redis server.
type BadgerBackend struct {
	db *badger.DB
}

// NewBadgerBackend opens (or creates) a Badger database per the config
func NewBadgerBackend(config *BadgerConfig) (*BadgerBackend, error) {
	if config == nil {
		return nil, fmt.Errorf("badger configuration cannot be nil")
	}

	opts := badger.DefaultOptions(config.Dir).
		WithSyncWrites(config.SyncWrites).
		WithLogger(nil)
	if config.Dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	return &BadgerBackend{db: db}, nil
}

// NewBadgerBackendWithDB wraps an already-open Badger database. The caller
// retains ownership of the database lifecycle.
func NewBadgerBackendWithDB(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

// Get retrieves the value for key
func (bb *BadgerBackend) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := bb.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrKeyNotFound
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}

		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

// Set stores value under key
func (bb *BadgerBackend) Set(ctx context.Context, key, value string) error {
	return bb.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		return nil
	})
}

// Delete removes the given keys in a single transaction
func (bb *BadgerBackend) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return bb.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			err := txn.Delete([]byte(key))
			if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}
		return nil
	})
}

// Ping verifies the database is open and readable
func (bb *BadgerBackend) Ping(ctx context.Context) error {
	if bb.db.IsClosed() {
		return fmt.Errorf("badger database is closed")
	}
	return nil
}

// Close closes the underlying database
func (bb *BadgerBackend) Close() error {
	return bb.db.Close()
}
