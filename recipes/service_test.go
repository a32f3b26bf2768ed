package recipes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldhands175/globedine/cache"
	"github.com/coldhands175/globedine/models"
)

func newTestStore(t *testing.T) cache.Store {
	t.Helper()

	store, err := cache.NewRecipeStore(context.Background(), cache.DefaultConfig())
	require.NoError(t, err)
	return store
}

func italianRecords() []models.RecipeRecord {
	return []models.RecipeRecord{
		{ID: "recipe-100", Title: "Margherita Pizza", Country: "Italy", Region: models.RegionEurope},
		{ID: "recipe-101", Title: "Carbonara", Country: "Italy", Region: models.RegionEurope},
	}
}

func TestService_GetRecipes_CacheMiss(t *testing.T) {
	store := newTestStore(t)
	fetcher := NewMockFetcher()
	svc := NewService(store, fetcher, nil)
	ctx := context.Background()

	records := italianRecords()
	fetcher.On("FetchRecipesForCuisine", ctx, "Italian").Return(records, nil).Once()

	got := svc.GetRecipes(ctx, "Italian", false)
	assert.Equal(t, records, got)

	// The fetched result was cached.
	assert.True(t, store.HasCuisine("Italian"))
	fetcher.AssertExpectations(t)
}

func TestService_GetRecipes_CacheHit(t *testing.T) {
	store := newTestStore(t)
	fetcher := NewMockFetcher()
	svc := NewService(store, fetcher, nil)
	ctx := context.Background()

	records := italianRecords()
	fetcher.On("FetchRecipesForCuisine", ctx, "Italian").Return(records, nil).Once()

	first := svc.GetRecipes(ctx, "Italian", false)
	second := svc.GetRecipes(ctx, "Italian", false)

	assert.Equal(t, first, second)
	// The second call is served from the cache without fetching again.
	fetcher.AssertNumberOfCalls(t, "FetchRecipesForCuisine", 1)
}

func TestService_GetRecipes_ForceRefresh(t *testing.T) {
	store := newTestStore(t)
	fetcher := NewMockFetcher()
	svc := NewService(store, fetcher, nil)
	ctx := context.Background()

	stale := italianRecords()
	fresh := []models.RecipeRecord{
		{ID: "recipe-102", Title: "Osso Buco", Country: "Italy", Region: models.RegionEurope},
	}
	fetcher.On("FetchRecipesForCuisine", ctx, "Italian").Return(stale, nil).Once()
	fetcher.On("FetchRecipesForCuisine", ctx, "Italian").Return(fresh, nil).Once()

	svc.GetRecipes(ctx, "Italian", false)
	got := svc.GetRecipes(ctx, "Italian", true)

	assert.Equal(t, fresh, got)
	assert.Equal(t, fresh, store.GetRecipesForCuisine("Italian"))
	fetcher.AssertNumberOfCalls(t, "FetchRecipesForCuisine", 2)
}

func TestService_GetRecipes_EmptyCuisineReturnsAll(t *testing.T) {
	store := newTestStore(t)
	fetcher := NewMockFetcher()
	svc := NewService(store, fetcher, nil)
	ctx := context.Background()

	require.NoError(t, store.AddRecipes(ctx, "Italian", italianRecords()))
	require.NoError(t, store.AddRecipes(ctx, "Thai", []models.RecipeRecord{
		{ID: "recipe-700", Title: "Pad Thai", Country: "Thailand", Region: models.RegionAsia},
	}))

	got := svc.GetRecipes(ctx, "", false)
	assert.Len(t, got, 3)
	// No fetch happens for the everything query.
	fetcher.AssertNumberOfCalls(t, "FetchRecipesForCuisine", 0)
}

func TestService_GetRecipes_FetchFailure(t *testing.T) {
	store := newTestStore(t)
	fetcher := NewMockFetcher()
	svc := NewService(store, fetcher, nil)
	ctx := context.Background()

	fetcher.On("FetchRecipesForCuisine", ctx, "Italian").Return(nil, errors.New("network down")).Once()

	got := svc.GetRecipes(ctx, "Italian", false)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.False(t, store.HasCuisine("Italian"))

	// A later fetch succeeds and caches; the earlier miss was not recorded.
	records := italianRecords()
	fetcher.On("FetchRecipesForCuisine", ctx, "Italian").Return(records, nil).Once()
	assert.Equal(t, records, svc.GetRecipes(ctx, "Italian", false))
	assert.True(t, store.HasCuisine("Italian"))
}

func TestService_GetRecipes_EmptyFetchNotCached(t *testing.T) {
	store := newTestStore(t)
	fetcher := NewMockFetcher()
	svc := NewService(store, fetcher, nil)
	ctx := context.Background()

	fetcher.On("FetchRecipesForCuisine", ctx, "Italian").Return([]models.RecipeRecord{}, nil)

	got := svc.GetRecipes(ctx, "Italian", false)
	assert.Empty(t, got)
	assert.False(t, store.HasCuisine("Italian"))

	// Without a cached entry, the next call fetches again.
	svc.GetRecipes(ctx, "Italian", false)
	fetcher.AssertNumberOfCalls(t, "FetchRecipesForCuisine", 2)
}

func TestService_GetRecipes_SkipsMalformedRecords(t *testing.T) {
	store := newTestStore(t)
	fetcher := NewMockFetcher()
	svc := NewService(store, fetcher, nil)
	ctx := context.Background()

	mixed := []models.RecipeRecord{
		{ID: "recipe-100", Title: "Margherita Pizza", Country: "Italy"},
		{ID: "", Title: "No ID"},
		{ID: "recipe-101", Title: "Carbonara", Latitude: 2000},
	}
	fetcher.On("FetchRecipesForCuisine", ctx, "Italian").Return(mixed, nil).Once()

	got := svc.GetRecipes(ctx, "Italian", false)
	require.Len(t, got, 1)
	assert.Equal(t, "recipe-100", got[0].ID)
}

func TestService_InitializeCache(t *testing.T) {
	store := newTestStore(t)
	fetcher := NewMockFetcher()
	svc := NewService(store, fetcher, nil)
	ctx := context.Background()

	for _, cuisine := range DefaultCuisines {
		fetcher.On("FetchRecipesForCuisine", ctx, cuisine).Return([]models.RecipeRecord{
			{ID: "recipe-" + cuisine, Title: cuisine + " dish", Country: cuisine},
		}, nil).Once()
	}

	assert.True(t, svc.InitializeCache(ctx, nil))
	for _, cuisine := range DefaultCuisines {
		assert.True(t, store.HasCuisine(cuisine), "cuisine %s should be warmed", cuisine)
	}

	// A second pass is a no-op for already-present cuisines.
	assert.True(t, svc.InitializeCache(ctx, nil))
	fetcher.AssertNumberOfCalls(t, "FetchRecipesForCuisine", len(DefaultCuisines))
}

func TestService_InitializeCache_PartialFailure(t *testing.T) {
	store := newTestStore(t)
	fetcher := NewMockFetcher()
	svc := NewService(store, fetcher, nil)
	ctx := context.Background()

	cuisines := []string{"Italian", "Mexican", "Thai"}
	fetcher.On("FetchRecipesForCuisine", ctx, "Italian").Return(italianRecords(), nil)
	fetcher.On("FetchRecipesForCuisine", ctx, "Mexican").Return(nil, errors.New("timeout"))
	fetcher.On("FetchRecipesForCuisine", ctx, "Thai").Return([]models.RecipeRecord{
		{ID: "recipe-700", Title: "Pad Thai", Country: "Thailand"},
	}, nil)

	// One failed cuisine flips the flag but does not stop the others.
	assert.False(t, svc.InitializeCache(ctx, cuisines))
	assert.True(t, store.HasCuisine("Italian"))
	assert.False(t, store.HasCuisine("Mexican"))
	assert.True(t, store.HasCuisine("Thai"))
}

func TestService_ToggleFavorite(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, NewMockFetcher(), nil)
	ctx := context.Background()

	require.NoError(t, store.AddRecipes(ctx, "Italian", italianRecords()))

	updated, err := svc.ToggleFavorite(ctx, "recipe-101")
	require.NoError(t, err)
	assert.True(t, updated.Favorite)

	// The flip is visible through the store.
	cached := store.GetRecipesForCuisine("Italian")
	require.Len(t, cached, 2)
	assert.False(t, cached[0].Favorite)
	assert.True(t, cached[1].Favorite)

	// Toggling again flips it back.
	updated, err = svc.ToggleFavorite(ctx, "recipe-101")
	require.NoError(t, err)
	assert.False(t, updated.Favorite)
}

func TestService_ToggleFavorite_NotFound(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, NewMockFetcher(), nil)
	ctx := context.Background()

	require.NoError(t, store.AddRecipes(ctx, "Italian", italianRecords()))

	_, err := svc.ToggleFavorite(ctx, "recipe-999")
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	_, err = svc.ToggleFavorite(ctx, "")
	assert.Error(t, err)
}

func TestService_FilterByScope(t *testing.T) {
	records := []models.RecipeRecord{
		{ID: "recipe-100", Title: "Carbonara", Country: "Italy", Region: models.RegionEurope},
		{ID: "recipe-300", Title: "Mapo Tofu", Country: "China", Region: models.RegionAsia},
	}

	got := FilterByScope(records, "Asia")
	require.Len(t, got, 1)
	assert.Equal(t, "recipe-300", got[0].ID)
}
