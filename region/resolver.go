// Package region decides whether a recipe belongs to a user-selected
// geographic scope. Resolution is a pure, layered fallback: continent
// match, exact country match, substring match, cuisine-keyword match, and
// finally the mock-data ID-range heuristic.
package region

import (
	"strconv"
	"strings"

	"github.com/coldhands175/globedine/models"
)

// Scope is the user's current geographic filter target: either a
// continent-level region label or a country/cuisine name. Transient, one
// per user selection.
type Scope string

// IsContinent reports whether the scope names one of the fixed continent
// labels.
func (s Scope) IsContinent() bool {
	return models.IsRegion(string(s))
}

// Resolve reports whether record is in scope. It is a pure function:
// strategies are evaluated in order and the first match wins.
func Resolve(record models.RecipeRecord, scope Scope) bool {
	name := strings.TrimSpace(string(scope))
	if name == "" {
		return false
	}

	// 1. Continent scope: region label equality decides alone.
	if models.IsRegion(name) {
		return strings.EqualFold(record.Region, name)
	}

	// 2. Exact country match.
	if strings.EqualFold(record.Country, name) {
		return true
	}

	// 3. Substring match in either direction, for partial or alternate
	// naming ("Korea" vs "Korea, Republic of").
	lowerCountry := strings.ToLower(record.Country)
	lowerName := strings.ToLower(name)
	if lowerCountry != "" &&
		(strings.Contains(lowerCountry, lowerName) || strings.Contains(lowerName, lowerCountry)) {
		return true
	}

	// 4. Cuisine-keyword match: resolve the scope to a cuisine label and
	// look for it in the record's title or description.
	cuisine, ok := CountryCuisine(name)
	if !ok {
		return false
	}

	lowerCuisine := strings.ToLower(cuisine)
	if strings.Contains(strings.ToLower(record.Title), lowerCuisine) ||
		strings.Contains(strings.ToLower(record.Description), lowerCuisine) {
		return true
	}

	// 5. ID-range heuristic for the bundled mock dataset: synthetic IDs
	// carry a numeric suffix minted from the per-cuisine range table.
	if lo, hi, ok := CuisineIDRange(cuisine); ok {
		if n, ok := idSuffix(record.ID); ok && n >= lo && n < hi {
			return true
		}
	}

	return false
}

// FilterInScope returns the subset of records in scope, preserving order.
func FilterInScope(records []models.RecipeRecord, scope Scope) []models.RecipeRecord {
	matched := []models.RecipeRecord{}
	for _, rec := range records {
		if Resolve(rec, scope) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// ScopeForCountry translates a polygon-click country name into a Scope.
// A country present in the country-to-region table scopes to itself; an
// unknown country falls back to the nearest region by centroid distance
// from the click coordinates.
func ScopeForCountry(country string, lat, lng float64) Scope {
	name := strings.TrimSpace(country)

	if canonical := models.CanonicalRegion(name); canonical != "" {
		return Scope(canonical)
	}

	if _, ok := CountryRegion(name); ok {
		return Scope(name)
	}

	return Scope(NearestRegion(lat, lng))
}

// idSuffix extracts the numeric suffix of a synthetic mock-data
// identifier ("recipe-123" yields 123). Returns false for identifiers
// without one.
func idSuffix(id string) (int, bool) {
	idx := strings.LastIndex(id, "-")
	if idx < 0 || idx == len(id)-1 {
		return 0, false
	}

	n, err := strconv.Atoi(id[idx+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
