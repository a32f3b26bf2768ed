// Package globedine provides the caching and region-resolution core for a
// globe-based recipe exploration frontend.
//
// The module has three cooperating parts:
//   - A persisted per-cuisine recipe cache with a store-wide freshness
//     window (package cache), backed by a pluggable string-keyed blob
//     store (Redis, Badger, or in-memory).
//   - A pure region resolver (package region) that decides whether a
//     recipe belongs to a user-selected geographic scope using a layered
//     fallback strategy.
//   - A data feed builder (package globe) that derives the positioned,
//     colored point and arc collections consumed by the rendering widget.
//
// # Basic Usage
//
// Create a store with an embedded Badger backend and serve recipes through
// the cache-backed retrieval service:
//
//	backend, err := storage.NewBadgerBackend(storage.DefaultBadgerConfig("/data/globedine"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store, err := cache.NewRecipeStore(context.Background(), cache.Config{Backend: backend})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	svc := recipes.NewService(store, recipes.NewMockSource(), nil)
//	italian := svc.GetRecipes(ctx, "Italian", false)
//
// Filter the full collection down to a user-selected scope and build the
// globe point feed:
//
//	scope := region.ScopeForCountry("Italy", 41.9, 12.6)
//	visible := recipes.FilterByScope(svc.GetRecipes(ctx, "", false), scope)
//	points := globe.BuildPoints(visible, selectedID)
//
// # Error Handling
//
// The cache layer reports typed errors that can be inspected with the
// IsXxxError helpers:
//
//	if err := store.AddRecipes(ctx, cuisine, recs); err != nil {
//	    if cache.IsValidationError(err) {
//	        // reject bad input
//	    }
//	}
//
// Persistence and fetch failures never surface as errors from the
// retrieval path: the store degrades to a cold cache and the service
// degrades to an empty result, logging the diagnostic.
//
// # Persistence Layout
//
// The persisted store uses a namespaced key layout:
//   - globedine:updated_at              last write, ms since epoch, as text
//   - globedine:cuisines                JSON array of cached cuisine names
//   - globedine:recipes:<cuisine>       JSON array of recipe records
//
// On construction the store hydrates from these keys if the timestamp is
// within the expiry window (default 24h); otherwise the persisted state is
// discarded. A corrupt per-cuisine blob is skipped without aborting the
// rest of the load.
package globedine
