// Package cache implements the persisted per-cuisine recipe store: an
// in-memory cuisine-to-recipes mapping memoizing fetch results, persisted
// through a pluggable blob-store backend and governed by a single
// store-wide freshness window.
package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coldhands175/globedine/internal"
	"github.com/coldhands175/globedine/models"
	"github.com/coldhands175/globedine/storage"
)

// DefaultExpiryWindow is the store-wide freshness window applied when the
// configuration does not specify one. Persisted state older than this is
// discarded at construction.
const DefaultExpiryWindow = 24 * time.Hour

// Stats is a snapshot of the store's observable state
type Stats struct {
	Cuisines  int       `json:"cuisines"`
	Recipes   int       `json:"recipes"`
	LastWrite time.Time `json:"last_write"`
	Hydrated  bool      `json:"hydrated"`
	Persisted bool      `json:"persisted"`
}

// Store defines the interface for the recipe cache
type Store interface {
	// HasCuisine reports whether a non-empty sequence is cached for the
	// exact cuisine key.
	HasCuisine(cuisine string) bool

	// GetRecipesForCuisine returns the cached sequence for cuisine, or an
	// empty sequence if absent. Never fails.
	GetRecipesForCuisine(cuisine string) []models.RecipeRecord

	// GetAllRecipes returns the concatenation of all cached sequences in
	// cuisine insertion order.
	GetAllRecipes() []models.RecipeRecord

	// Cuisines returns the cached cuisine keys in insertion order.
	Cuisines() []string

	// AddRecipes overwrites the sequence for cuisine, bumps the store-wide
	// timestamp, and persists the full store best-effort.
	AddRecipes(ctx context.Context, cuisine string, records []models.RecipeRecord) error

	// ClearCache empties the in-memory mapping and removes all persisted
	// keys including the timestamp.
	ClearCache(ctx context.Context) error

	// Stats returns a snapshot of the store's state.
	Stats() Stats

	// Health checks the persisted backend, if any.
	Health(ctx context.Context) error

	// Close releases the persisted backend, if any.
	Close() error
}

// Clock abstracts the wall clock so expiry behavior is testable
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now
func SystemClock() Clock { return systemClock{} }

// Config holds recipe store configuration
type Config struct {
	// ExpiryWindow bounds the age of persisted state loaded at
	// construction. Zero means DefaultExpiryWindow.
	ExpiryWindow time.Duration

	// Backend is the persisted blob store. Nil means memory-only
	// operation: the cache works normally but nothing survives the
	// process.
	Backend storage.Backend

	// Clock supplies the current time. Nil means the system clock.
	Clock Clock

	// Logger receives best-effort failure diagnostics. Nil means no
	// logging.
	Logger *zerolog.Logger
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() Config {
	return Config{
		ExpiryWindow: DefaultExpiryWindow,
	}
}

// Error type aliases re-exported so callers never import internal

// CacheErrorType represents the type of cache error
type CacheErrorType = internal.ErrorType

// Cache error type constants
const (
	CacheErrorTypeStorage       = internal.ErrorTypeStorage
	CacheErrorTypeKeyInvalid    = internal.ErrorTypeKeyInvalid
	CacheErrorTypeNotFound      = internal.ErrorTypeNotFound
	CacheErrorTypeSerialization = internal.ErrorTypeSerialization
	CacheErrorTypeValidation    = internal.ErrorTypeValidation
	CacheErrorTypeExpired       = internal.ErrorTypeExpired
)

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool { return internal.IsValidationError(err) }

// IsStorageError checks if the error is a backend storage error
func IsStorageError(err error) bool { return internal.IsStorageError(err) }

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool { return internal.IsNotFoundError(err) }

// IsSerializationError checks if the error is a serialization error
func IsSerializationError(err error) bool { return internal.IsSerializationError(err) }
