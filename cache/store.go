package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/coldhands175/globedine/internal"
	"github.com/coldhands175/globedine/models"
	"github.com/coldhands175/globedine/storage"
)

// RecipeStore implements the Store interface. The in-memory mapping is
// authoritative; the backend is a best-effort persistence layer whose
// failures degrade to a cold cache and are never fatal to the caller.
type RecipeStore struct {
	mu       sync.RWMutex
	recipes  map[string][]models.RecipeRecord
	order    []string // cuisine insertion order, drives GetAllRecipes
	lastWrit time.Time
	hydrated bool

	backend   storage.Backend
	keyGen    internal.KeyGenerator
	validator *internal.InputValidator
	clock     Clock
	expiry    time.Duration
	logger    zerolog.Logger
}

// NewRecipeStore creates a recipe store and, when a backend is configured,
// hydrates it from persisted state within the expiry window. Persisted
// state that is expired, missing, or unreadable results in a cold start,
// never a construction failure.
func NewRecipeStore(ctx context.Context, config Config) (*RecipeStore, error) {
	return newRecipeStore(ctx, config, internal.NewKeyGenerator())
}

// NewRecipeStoreWithDependencies creates a recipe store with an injected
// key generator for testing
func NewRecipeStoreWithDependencies(ctx context.Context, config Config, keyGen internal.KeyGenerator) (*RecipeStore, error) {
	return newRecipeStore(ctx, config, keyGen)
}

func newRecipeStore(ctx context.Context, config Config, keyGen internal.KeyGenerator) (*RecipeStore, error) {
	if config.ExpiryWindow < 0 {
		return nil, internal.NewValidationError(fmt.Sprintf("expiry window cannot be negative, got %v", config.ExpiryWindow), nil)
	}
	if config.ExpiryWindow == 0 {
		config.ExpiryWindow = DefaultExpiryWindow
	}
	if config.Clock == nil {
		config.Clock = SystemClock()
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}

	rs := &RecipeStore{
		recipes:   make(map[string][]models.RecipeRecord),
		backend:   config.Backend,
		keyGen:    keyGen,
		validator: internal.NewInputValidator(),
		clock:     config.Clock,
		expiry:    config.ExpiryWindow,
		logger:    logger.With().Str("component", "recipestore").Logger(),
	}

	if rs.backend != nil {
		rs.hydrate(ctx)
	}

	return rs, nil
}

// HasCuisine reports whether a non-empty sequence is cached for the exact
// cuisine key
func (rs *RecipeStore) HasCuisine(cuisine string) bool {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.recipes[cuisine]) > 0
}

// GetRecipesForCuisine returns a copy of the cached sequence for cuisine,
// or an empty sequence if absent
func (rs *RecipeStore) GetRecipesForCuisine(cuisine string) []models.RecipeRecord {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return append([]models.RecipeRecord{}, rs.recipes[cuisine]...)
}

// GetAllRecipes returns the concatenation of all cached sequences in
// cuisine insertion order
func (rs *RecipeStore) GetAllRecipes() []models.RecipeRecord {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	all := []models.RecipeRecord{}
	for _, cuisine := range rs.order {
		all = append(all, rs.recipes[cuisine]...)
	}
	return all
}

// Cuisines returns the cached cuisine keys in insertion order
func (rs *RecipeStore) Cuisines() []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return append([]string{}, rs.order...)
}

// AddRecipes overwrites (does not append to) any existing sequence for the
// cuisine, sets the store-wide timestamp, and triggers persistence of the
// full store. Persistence failures are logged and swallowed; only input
// validation can fail the call.
func (rs *RecipeStore) AddRecipes(ctx context.Context, cuisine string, records []models.RecipeRecord) error {
	if err := rs.validator.ValidateCuisineName(cuisine); err != nil {
		return err
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			return internal.NewValidationError(fmt.Sprintf("invalid record at index %d", i), err)
		}
	}

	rs.mu.Lock()
	if _, exists := rs.recipes[cuisine]; !exists {
		rs.order = append(rs.order, cuisine)
	}
	rs.recipes[cuisine] = append([]models.RecipeRecord{}, records...)
	rs.lastWrit = rs.clock.Now()
	rs.hydrated = true
	snapshot := rs.snapshotLocked()
	rs.mu.Unlock()

	rs.persist(ctx, snapshot)
	return nil
}

// ClearCache empties the in-memory mapping and removes all persisted keys
// plus the timestamp. The in-memory clear always succeeds; a backend
// failure is reported but leaves the store usable and cold.
func (rs *RecipeStore) ClearCache(ctx context.Context) error {
	rs.mu.Lock()
	cuisines := append([]string{}, rs.order...)
	rs.recipes = make(map[string][]models.RecipeRecord)
	rs.order = nil
	rs.lastWrit = time.Time{}
	rs.hydrated = false
	rs.mu.Unlock()

	return rs.clearPersisted(ctx, cuisines)
}

// Stats returns a snapshot of the store's state
func (rs *RecipeStore) Stats() Stats {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	total := 0
	for _, recs := range rs.recipes {
		total += len(recs)
	}

	return Stats{
		Cuisines:  len(rs.order),
		Recipes:   total,
		LastWrite: rs.lastWrit,
		Hydrated:  rs.hydrated,
		Persisted: rs.backend != nil,
	}
}

// Health checks the persisted backend, if any
func (rs *RecipeStore) Health(ctx context.Context) error {
	if rs.backend == nil {
		return nil
	}
	return rs.backend.Ping(ctx)
}

// Close releases the persisted backend, if any
func (rs *RecipeStore) Close() error {
	if rs.backend == nil {
		return nil
	}
	return rs.backend.Close()
}

// storeSnapshot carries the full store state out of the lock so
// persistence runs without holding it
type storeSnapshot struct {
	order     []string
	recipes   map[string][]models.RecipeRecord
	lastWrite time.Time
}

// snapshotLocked copies the store state. Caller must hold mu.
func (rs *RecipeStore) snapshotLocked() storeSnapshot {
	snap := storeSnapshot{
		order:     append([]string{}, rs.order...),
		recipes:   make(map[string][]models.RecipeRecord, len(rs.recipes)),
		lastWrite: rs.lastWrit,
	}
	for cuisine, recs := range rs.recipes {
		snap.recipes[cuisine] = recs
	}
	return snap
}

// persist writes the timestamp, the cuisine key list, and every cuisine
// blob. Each write is best-effort: a failure is logged and the remaining
// writes still run, so a partially persisted store is possible and the
// loader tolerates it.
func (rs *RecipeStore) persist(ctx context.Context, snap storeSnapshot) {
	if rs.backend == nil {
		return
	}

	ts := strconv.FormatInt(snap.lastWrite.UnixMilli(), 10)
	if err := rs.backend.Set(ctx, rs.keyGen.TimestampKey(), ts); err != nil {
		rs.logger.Warn().Err(err).Str("key", rs.keyGen.TimestampKey()).Msg("failed to persist cache timestamp")
	}

	list, err := json.Marshal(snap.order)
	if err != nil {
		rs.logger.Warn().Err(err).Msg("failed to marshal cuisine list")
	} else if err := rs.backend.Set(ctx, rs.keyGen.CuisineListKey(), string(list)); err != nil {
		rs.logger.Warn().Err(err).Str("key", rs.keyGen.CuisineListKey()).Msg("failed to persist cuisine list")
	}

	for _, cuisine := range snap.order {
		key := rs.keyGen.CuisineKey(cuisine)
		if err := rs.keyGen.ValidateKey(key); err != nil {
			rs.logger.Warn().Err(err).Str("cuisine", cuisine).Msg("skipping cuisine with invalid key")
			continue
		}

		blob, err := json.Marshal(snap.recipes[cuisine])
		if err != nil {
			rs.logger.Warn().Err(err).Str("cuisine", cuisine).Msg("failed to marshal recipes")
			continue
		}

		if err := rs.backend.Set(ctx, key, string(blob)); err != nil {
			rs.logger.Warn().Err(err).Str("key", key).Msg("failed to persist recipes")
		}
	}
}

// hydrate loads persisted state into memory. Expired or unreadable state
// results in a cold start; a corrupt or missing per-cuisine blob is
// skipped without aborting the rest of the load.
func (rs *RecipeStore) hydrate(ctx context.Context) {
	ts, err := rs.backend.Get(ctx, rs.keyGen.TimestampKey())
	if errors.Is(err, storage.ErrKeyNotFound) {
		// No timestamp means nothing trustworthy to load; drop whatever
		// orphaned entries a crash may have left behind.
		if cuisines := rs.persistedCuisines(ctx); len(cuisines) > 0 {
			rs.clearPersisted(ctx, cuisines)
		}
		return
	}
	if err != nil {
		rs.logger.Warn().Err(err).Msg("failed to read cache timestamp, starting cold")
		return
	}

	millis, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		rs.logger.Warn().Err(err).Str("timestamp", ts).Msg("unparseable cache timestamp, clearing persisted state")
		rs.clearPersisted(ctx, rs.persistedCuisines(ctx))
		return
	}

	writtenAt := time.UnixMilli(millis)
	if age := rs.clock.Now().Sub(writtenAt); age >= rs.expiry {
		rs.logger.Info().Dur("age", age).Msg("persisted cache expired, clearing")
		rs.clearPersisted(ctx, rs.persistedCuisines(ctx))
		return
	}

	cuisines, err := rs.loadCuisineList(ctx)
	if err != nil {
		rs.logger.Warn().Err(err).Msg("failed to load cuisine list, clearing persisted state")
		rs.clearPersisted(ctx, nil)
		return
	}

	loaded := 0
	for _, cuisine := range cuisines {
		key := rs.keyGen.CuisineKey(cuisine)

		blob, err := rs.backend.Get(ctx, key)
		if err != nil {
			// The key list can reference a blob a crash never wrote.
			rs.logger.Warn().Err(err).Str("cuisine", cuisine).Msg("skipping unreadable cuisine entry")
			continue
		}

		var records []models.RecipeRecord
		if err := json.Unmarshal([]byte(blob), &records); err != nil {
			rs.logger.Warn().Err(err).Str("cuisine", cuisine).Msg("skipping corrupt cuisine entry")
			continue
		}
		if len(records) == 0 {
			continue
		}

		rs.mu.Lock()
		if _, exists := rs.recipes[cuisine]; !exists {
			rs.order = append(rs.order, cuisine)
		}
		rs.recipes[cuisine] = records
		rs.mu.Unlock()
		loaded++
	}

	rs.mu.Lock()
	rs.lastWrit = writtenAt
	rs.hydrated = true
	rs.mu.Unlock()

	rs.logger.Debug().Int("cuisines", loaded).Time("written_at", writtenAt).Msg("cache hydrated from persisted state")
}

// loadCuisineList reads and decodes the persisted cuisine key list
func (rs *RecipeStore) loadCuisineList(ctx context.Context) ([]string, error) {
	raw, err := rs.backend.Get(ctx, rs.keyGen.CuisineListKey())
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, internal.NewStorageError(rs.keyGen.CuisineListKey(), "failed to read cuisine list", err)
	}

	var cuisines []string
	if err := json.Unmarshal([]byte(raw), &cuisines); err != nil {
		return nil, internal.NewSerializationError(rs.keyGen.CuisineListKey(), "failed to decode cuisine list", err)
	}
	return cuisines, nil
}

// persistedCuisines returns the persisted cuisine list best-effort, for
// clearing stale entries when the in-memory view is empty
func (rs *RecipeStore) persistedCuisines(ctx context.Context) []string {
	cuisines, err := rs.loadCuisineList(ctx)
	if err != nil {
		rs.logger.Warn().Err(err).Msg("could not enumerate persisted cuisines for clearing")
		return nil
	}
	return cuisines
}

// clearPersisted deletes the timestamp, the cuisine list, and the blob for
// every named cuisine
func (rs *RecipeStore) clearPersisted(ctx context.Context, cuisines []string) error {
	if rs.backend == nil {
		return nil
	}

	keys := []string{rs.keyGen.TimestampKey(), rs.keyGen.CuisineListKey()}
	for _, cuisine := range cuisines {
		keys = append(keys, rs.keyGen.CuisineKey(cuisine))
	}

	if err := rs.backend.Delete(ctx, keys...); err != nil {
		rs.logger.Warn().Err(err).Msg("failed to clear persisted cache")
		return internal.NewStorageError("", "failed to clear persisted cache", err)
	}
	return nil
}

// Verify interface implementation at compile time
var _ Store = (*RecipeStore)(nil)
