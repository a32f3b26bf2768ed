package recipes

import (
	"strings"

	"github.com/coldhands175/globedine/models"
)

// FilterByQuery applies a free-text filter over title, country, region,
// description, and ingredients. Matching is case-insensitive substring;
// an empty or whitespace query matches everything.
func FilterByQuery(records []models.RecipeRecord, query string) []models.RecipeRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]models.RecipeRecord{}, records...)
	}

	matched := []models.RecipeRecord{}
	for _, rec := range records {
		if recordMatches(rec, q) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// recordMatches reports whether any searchable field of rec contains the
// lowercase query q.
func recordMatches(rec models.RecipeRecord, q string) bool {
	if strings.Contains(strings.ToLower(rec.Title), q) ||
		strings.Contains(strings.ToLower(rec.Country), q) ||
		strings.Contains(strings.ToLower(rec.Region), q) ||
		strings.Contains(strings.ToLower(rec.Description), q) {
		return true
	}

	for _, ing := range rec.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}
