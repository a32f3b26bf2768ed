// Package models defines the domain types shared by the globedine cache,
// resolver, and feed packages.
package models

import (
	"fmt"
	"strings"
)

// Continent-level region labels. A RecipeRecord's Region is either one of
// these or empty.
const (
	RegionNorthAmerica = "North America"
	RegionSouthAmerica = "South America"
	RegionEurope       = "Europe"
	RegionAfrica       = "Africa"
	RegionAsia         = "Asia"
	RegionAustralia    = "Australia"
)

// Regions lists the fixed continent labels in display order.
var Regions = []string{
	RegionNorthAmerica,
	RegionSouthAmerica,
	RegionEurope,
	RegionAfrica,
	RegionAsia,
	RegionAustralia,
}

// IsRegion reports whether label is one of the fixed continent labels.
// The comparison is case-insensitive.
func IsRegion(label string) bool {
	for _, r := range Regions {
		if strings.EqualFold(r, label) {
			return true
		}
	}
	return false
}

// CanonicalRegion returns the canonical spelling of a continent label, or
// empty string if the label is not a known region.
func CanonicalRegion(label string) string {
	for _, r := range Regions {
		if strings.EqualFold(r, label) {
			return r
		}
	}
	return ""
}

// RecipeRecord is the normalized, app-internal representation of a recipe,
// independent of its data source.
type RecipeRecord struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Country      string   `json:"country"`
	Region       string   `json:"region,omitempty"`
	PrepTime     string   `json:"prep_time,omitempty"`
	Image        string   `json:"image,omitempty"`
	Favorite     bool     `json:"favorite"`
	Description  string   `json:"description,omitempty"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
	DietaryTags  []string `json:"dietary_tags,omitempty"`
}

// Validate checks the invariants a record must satisfy before it enters
// the cache: a non-empty ID and title, a region label that is either empty
// or one of the fixed continent labels, and coordinates within range.
func (r *RecipeRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("recipe ID cannot be empty")
	}

	if r.Title == "" {
		return fmt.Errorf("recipe '%s' has no title", r.ID)
	}

	if r.Region != "" && !IsRegion(r.Region) {
		return fmt.Errorf("recipe '%s' has unknown region '%s'", r.ID, r.Region)
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		return fmt.Errorf("recipe '%s' has latitude out of range: %v", r.ID, r.Latitude)
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		return fmt.Errorf("recipe '%s' has longitude out of range: %v", r.ID, r.Longitude)
	}

	return nil
}

// APIRecipe is the declared wire shape of a recipe as returned by the
// external fetch collaborator. It exists so the API-to-domain mapping is
// an explicit, total function rather than an unchecked dynamic shape.
type APIRecipe struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Country      string   `json:"country"`
	Region       string   `json:"region"`
	PrepTime     string   `json:"prepTime"`
	Image        string   `json:"image"`
	Description  string   `json:"description"`
	Latitude     float64  `json:"lat"`
	Longitude    float64  `json:"lng"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	DietaryTags  []string `json:"dietaryTags"`
}

// FromAPI converts an external API recipe into a domain record, validating
// at the boundary. An unrecognized region label is cleared rather than
// carried through; nil collections normalize to empty slices. Records that
// fail validation are rejected with an error the caller can skip on.
func FromAPI(raw APIRecipe) (RecipeRecord, error) {
	rec := RecipeRecord{
		ID:           strings.TrimSpace(raw.ID),
		Title:        strings.TrimSpace(raw.Title),
		Country:      strings.TrimSpace(raw.Country),
		Region:       CanonicalRegion(raw.Region),
		PrepTime:     raw.PrepTime,
		Image:        raw.Image,
		Description:  raw.Description,
		Latitude:     raw.Latitude,
		Longitude:    raw.Longitude,
		Ingredients:  raw.Ingredients,
		Instructions: raw.Instructions,
		DietaryTags:  raw.DietaryTags,
	}

	if rec.Ingredients == nil {
		rec.Ingredients = []string{}
	}
	if rec.Instructions == nil {
		rec.Instructions = []string{}
	}
	if rec.DietaryTags == nil {
		rec.DietaryTags = []string{}
	}

	if err := rec.Validate(); err != nil {
		return RecipeRecord{}, fmt.Errorf("invalid API recipe: %w", err)
	}

	return rec, nil
}
