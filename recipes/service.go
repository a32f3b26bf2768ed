// Package recipes provides the cache-backed retrieval service sitting
// between the UI and the fetch collaborator, plus the bundled mock
// dataset, free-text search, and scope filtering.
package recipes

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coldhands175/globedine/cache"
	"github.com/coldhands175/globedine/models"
	"github.com/coldhands175/globedine/region"
)

// ErrRecipeNotFound is returned when a recipe ID is not present in the
// cache.
var ErrRecipeNotFound = errors.New("recipes: recipe not found")

// DefaultCuisines is the fixed list of ten common cuisines warmed by
// InitializeCache when no explicit list is given.
var DefaultCuisines = []string{
	"Italian",
	"Mexican",
	"Chinese",
	"Indian",
	"Japanese",
	"French",
	"Thai",
	"Greek",
	"Spanish",
	"American",
}

// Fetcher is the external fetch collaborator contract: it returns recipe
// records for a cuisine or fails. Transport errors never cross the
// service boundary.
type Fetcher interface {
	FetchRecipesForCuisine(ctx context.Context, cuisine string) ([]models.RecipeRecord, error)
}

// Service is the cache-backed retrieval layer
type Service struct {
	store   cache.Store
	fetcher Fetcher
	logger  zerolog.Logger
}

// NewService creates a retrieval service over the given store and fetch
// collaborator. A nil logger disables diagnostics.
func NewService(store cache.Store, fetcher Fetcher, logger *zerolog.Logger) *Service {
	lg := zerolog.Nop()
	if logger != nil {
		lg = *logger
	}

	return &Service{
		store:   store,
		fetcher: fetcher,
		logger:  lg.With().Str("component", "recipes").Logger(),
	}
}

// GetRecipes returns recipes for a cuisine, consulting the cache first.
// An empty cuisine returns everything cached. With forceRefresh the fetch
// collaborator is always invoked. Fetch failures degrade to an empty
// result; only a non-empty fetch result is written back, so a transient
// miss never blocks a later successful fetch.
func (s *Service) GetRecipes(ctx context.Context, cuisine string, forceRefresh bool) []models.RecipeRecord {
	if cuisine == "" {
		return s.store.GetAllRecipes()
	}

	if s.store.HasCuisine(cuisine) && !forceRefresh {
		return s.store.GetRecipesForCuisine(cuisine)
	}

	fetched, err := s.fetcher.FetchRecipesForCuisine(ctx, cuisine)
	if err != nil {
		s.logger.Warn().Err(err).Str("cuisine", cuisine).Msg("fetch failed, returning empty result")
		return []models.RecipeRecord{}
	}

	valid := validRecords(fetched, cuisine, s.logger)
	if len(valid) == 0 {
		return []models.RecipeRecord{}
	}

	if err := s.store.AddRecipes(ctx, cuisine, valid); err != nil {
		s.logger.Warn().Err(err).Str("cuisine", cuisine).Msg("failed to cache fetched recipes")
	}

	return valid
}

// InitializeCache warms the cache for the given cuisines (default: the
// ten common cuisines) in one pass, adding only cuisines not already
// present. It is idempotent with respect to cache contents and reports
// success as a flag; failures are logged, never propagated.
func (s *Service) InitializeCache(ctx context.Context, cuisines []string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Msg("cache initialization panicked")
			ok = false
		}
	}()

	if len(cuisines) == 0 {
		cuisines = DefaultCuisines
	}

	ok = true
	for _, cuisine := range cuisines {
		if s.store.HasCuisine(cuisine) {
			continue
		}

		fetched, err := s.fetcher.FetchRecipesForCuisine(ctx, cuisine)
		if err != nil {
			s.logger.Warn().Err(err).Str("cuisine", cuisine).Msg("failed to load cuisine during initialization")
			ok = false
			continue
		}

		valid := validRecords(fetched, cuisine, s.logger)
		if len(valid) == 0 {
			continue
		}

		if err := s.store.AddRecipes(ctx, cuisine, valid); err != nil {
			s.logger.Warn().Err(err).Str("cuisine", cuisine).Msg("failed to cache cuisine during initialization")
			ok = false
		}
	}

	return ok
}

// ToggleFavorite flips the favorite flag on the identified recipe and
// rewrites its cuisine through the store, so cache entries are only ever
// mutated through add operations. Returns the updated record.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (models.RecipeRecord, error) {
	if id == "" {
		return models.RecipeRecord{}, fmt.Errorf("recipe ID cannot be empty")
	}

	for _, cuisine := range s.store.Cuisines() {
		records := s.store.GetRecipesForCuisine(cuisine)
		for i := range records {
			if records[i].ID != id {
				continue
			}

			records[i].Favorite = !records[i].Favorite
			if err := s.store.AddRecipes(ctx, cuisine, records); err != nil {
				return models.RecipeRecord{}, fmt.Errorf("failed to update favorite for '%s': %w", id, err)
			}
			return records[i], nil
		}
	}

	return models.RecipeRecord{}, ErrRecipeNotFound
}

// FilterByScope returns the subset of records matching the geographic
// scope, preserving order.
func FilterByScope(records []models.RecipeRecord, scope region.Scope) []models.RecipeRecord {
	return region.FilterInScope(records, scope)
}

// validRecords drops records that fail domain validation, logging how
// many were skipped. Malformed external data is skipped, not propagated.
func validRecords(records []models.RecipeRecord, cuisine string, logger zerolog.Logger) []models.RecipeRecord {
	valid := make([]models.RecipeRecord, 0, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			logger.Warn().Err(err).Str("cuisine", cuisine).Msg("skipping malformed recipe record")
			continue
		}
		valid = append(valid, records[i])
	}
	return valid
}
