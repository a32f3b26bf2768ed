package region

import (
	"strings"

	"github.com/coldhands175/globedine/models"
)

// The lookup tables below are static data contracts, not derived values.
// Name variants (e.g. "Brasil" and "Brazil") are deliberate: upstream data
// sources disagree on spellings and both must resolve. Extend freely, but
// never rename existing keys.

// countryRegion maps a country name (lowercase) to its continent label.
var countryRegion = map[string]string{
	// North America
	"united states":            models.RegionNorthAmerica,
	"united states of america": models.RegionNorthAmerica,
	"usa":                      models.RegionNorthAmerica,
	"canada":                   models.RegionNorthAmerica,
	"mexico":                   models.RegionNorthAmerica,
	"cuba":                     models.RegionNorthAmerica,
	"guatemala":                models.RegionNorthAmerica,
	"jamaica":                  models.RegionNorthAmerica,
	"costa rica":               models.RegionNorthAmerica,
	"panama":                   models.RegionNorthAmerica,

	// South America
	"brazil":    models.RegionSouthAmerica,
	"brasil":    models.RegionSouthAmerica,
	"argentina": models.RegionSouthAmerica,
	"peru":      models.RegionSouthAmerica,
	"chile":     models.RegionSouthAmerica,
	"colombia":  models.RegionSouthAmerica,
	"venezuela": models.RegionSouthAmerica,
	"ecuador":   models.RegionSouthAmerica,
	"bolivia":   models.RegionSouthAmerica,
	"uruguay":   models.RegionSouthAmerica,

	// Europe
	"italy":          models.RegionEurope,
	"france":         models.RegionEurope,
	"spain":          models.RegionEurope,
	"portugal":       models.RegionEurope,
	"greece":         models.RegionEurope,
	"germany":        models.RegionEurope,
	"united kingdom": models.RegionEurope,
	"uk":             models.RegionEurope,
	"england":        models.RegionEurope,
	"ireland":        models.RegionEurope,
	"netherlands":    models.RegionEurope,
	"belgium":        models.RegionEurope,
	"switzerland":    models.RegionEurope,
	"austria":        models.RegionEurope,
	"poland":         models.RegionEurope,
	"hungary":        models.RegionEurope,
	"sweden":         models.RegionEurope,
	"norway":         models.RegionEurope,
	"denmark":        models.RegionEurope,
	"finland":        models.RegionEurope,
	"russia":         models.RegionEurope,
	"ukraine":        models.RegionEurope,
	"turkey":         models.RegionEurope,

	// Africa
	"morocco":      models.RegionAfrica,
	"egypt":        models.RegionAfrica,
	"ethiopia":     models.RegionAfrica,
	"nigeria":      models.RegionAfrica,
	"south africa": models.RegionAfrica,
	"kenya":        models.RegionAfrica,
	"ghana":        models.RegionAfrica,
	"tunisia":      models.RegionAfrica,
	"algeria":      models.RegionAfrica,
	"senegal":      models.RegionAfrica,

	// Asia
	"china":                models.RegionAsia,
	"japan":                models.RegionAsia,
	"india":                models.RegionAsia,
	"thailand":             models.RegionAsia,
	"vietnam":              models.RegionAsia,
	"korea":                models.RegionAsia,
	"korea, republic of":   models.RegionAsia,
	"south korea":          models.RegionAsia,
	"indonesia":            models.RegionAsia,
	"malaysia":             models.RegionAsia,
	"philippines":          models.RegionAsia,
	"singapore":            models.RegionAsia,
	"israel":               models.RegionAsia,
	"lebanon":              models.RegionAsia,
	"iran":                 models.RegionAsia,
	"pakistan":             models.RegionAsia,
	"sri lanka":            models.RegionAsia,
	"united arab emirates": models.RegionAsia,
	"saudi arabia":         models.RegionAsia,

	// Australia / Oceania
	"australia":   models.RegionAustralia,
	"new zealand": models.RegionAustralia,
	"fiji":        models.RegionAustralia,
}

// countryCuisine maps a country name (lowercase) to its canonical cuisine
// label. This is the single authoritative copy shared by the resolver and
// the retrieval layer.
var countryCuisine = map[string]string{
	"italy":                    "Italian",
	"mexico":                   "Mexican",
	"china":                    "Chinese",
	"india":                    "Indian",
	"japan":                    "Japanese",
	"france":                   "French",
	"thailand":                 "Thai",
	"greece":                   "Greek",
	"spain":                    "Spanish",
	"united states":            "American",
	"united states of america": "American",
	"usa":                      "American",
	"brazil":                   "Brazilian",
	"brasil":                   "Brazilian",
	"united kingdom":           "British",
	"uk":                       "British",
	"england":                  "British",
	"korea":                    "Korean",
	"korea, republic of":       "Korean",
	"south korea":              "Korean",
	"vietnam":                  "Vietnamese",
	"morocco":                  "Moroccan",
	"ethiopia":                 "Ethiopian",
	"lebanon":                  "Lebanese",
	"turkey":                   "Turkish",
	"germany":                  "German",
	"portugal":                 "Portuguese",
	"peru":                     "Peruvian",
	"argentina":                "Argentinian",
	"russia":                   "Russian",
	"indonesia":                "Indonesian",
	"malaysia":                 "Malaysian",
	"philippines":              "Filipino",
}

// idRange is a half-open [Lo, Hi) interval of synthetic mock-data ID
// suffixes.
type idRange struct {
	Lo, Hi int
}

// cuisineIDRanges assigns each bundled mock cuisine a disjoint numeric ID
// range. This table is a data contract with the mock generator in the
// recipes package, which mints IDs from it; it is not a general geocoding
// rule.
var cuisineIDRanges = map[string]idRange{
	"Italian":  {100, 200},
	"Mexican":  {200, 300},
	"Chinese":  {300, 400},
	"Indian":   {400, 500},
	"Japanese": {500, 600},
	"French":   {600, 700},
	"Thai":     {700, 800},
	"Greek":    {800, 900},
	"Spanish":  {900, 1000},
	"American": {1000, 1100},
}

// regionCenters holds an approximate centroid per continent label, used by
// the nearest-region fallback.
var regionCenters = map[string][2]float64{
	models.RegionNorthAmerica: {45, -100},
	models.RegionSouthAmerica: {-15, -60},
	models.RegionEurope:       {50, 15},
	models.RegionAfrica:       {5, 20},
	models.RegionAsia:         {35, 90},
	models.RegionAustralia:    {-25, 135},
}

// CountryRegion looks up the continent label for a country name. The
// lookup is case-insensitive.
func CountryRegion(country string) (string, bool) {
	r, ok := countryRegion[strings.ToLower(strings.TrimSpace(country))]
	return r, ok
}

// CountryCuisine looks up the canonical cuisine label for a country name.
// The lookup is case-insensitive.
func CountryCuisine(country string) (string, bool) {
	c, ok := countryCuisine[strings.ToLower(strings.TrimSpace(country))]
	return c, ok
}

// CuisineIDRange returns the half-open mock-data ID range [lo, hi) for a
// cuisine label, if the cuisine is part of the bundled mock dataset.
func CuisineIDRange(cuisine string) (lo, hi int, ok bool) {
	r, ok := cuisineIDRanges[cuisine]
	if !ok {
		return 0, 0, false
	}
	return r.Lo, r.Hi, true
}

// NearestRegion returns the continent label whose centroid is closest to
// the given coordinates by squared Euclidean distance on raw lat/lng.
func NearestRegion(lat, lng float64) string {
	best := ""
	bestDist := 0.0
	for _, label := range models.Regions {
		center := regionCenters[label]
		dLat := lat - center[0]
		dLng := lng - center[1]
		dist := dLat*dLat + dLng*dLng
		if best == "" || dist < bestDist {
			best = label
			bestDist = dist
		}
	}
	return best
}
