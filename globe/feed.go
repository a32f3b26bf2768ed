// Package globe derives the data feed consumed by the rendering widget:
// positioned, colored point records for every recipe, and transient arc
// overlays pulsed when a recipe is selected. The widget itself is an
// external collaborator; this package only shapes its inputs.
package globe

import (
	"time"

	"github.com/coldhands175/globedine/models"
)

// Point colors and radii. Per-point appearance is derived here and
// nowhere else, so selection and favorite state always render
// consistently.
const (
	ColorBase     = "#ffb703"
	ColorFavorite = "#e63946"
	ColorSelected = "#06d6a0"

	RadiusBase     = 0.35
	RadiusSelected = 0.60
)

// DefaultPulseDuration is the dash-animation duration for a selection
// pulse arc.
const DefaultPulseDuration = 1500 * time.Millisecond

// Label is the opaque payload the widget reports back on hover/click
type Label struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Country string `json:"country"`
}

// Point is one positioned, colored, sized marker on the globe
type Point struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Color  string  `json:"color"`
	Radius float64 `json:"radius"`
	Label  Label   `json:"label"`
}

// Arc is a transient overlay between two coordinates with a
// dash-animation duration, used for one-shot selection pulses
type Arc struct {
	StartLat        float64       `json:"start_lat"`
	StartLng        float64       `json:"start_lng"`
	EndLat          float64       `json:"end_lat"`
	EndLng          float64       `json:"end_lng"`
	Color           string        `json:"color"`
	DashAnimateTime time.Duration `json:"dash_animate_time"`
}

// BuildPoints recomputes the point collection for the current recipe list
// and selection. Selected wins over favorite; everything else gets the
// base appearance.
func BuildPoints(records []models.RecipeRecord, selectedID string) []Point {
	points := make([]Point, 0, len(records))
	for _, rec := range records {
		p := Point{
			Lat:    rec.Latitude,
			Lng:    rec.Longitude,
			Color:  ColorBase,
			Radius: RadiusBase,
			Label: Label{
				ID:      rec.ID,
				Title:   rec.Title,
				Country: rec.Country,
			},
		}

		switch {
		case selectedID != "" && rec.ID == selectedID:
			p.Color = ColorSelected
			p.Radius = RadiusSelected
		case rec.Favorite:
			p.Color = ColorFavorite
		}

		points = append(points, p)
	}
	return points
}

// SelectionPulse builds the one-shot arc overlay flaring out from a newly
// selected recipe's location.
func SelectionPulse(rec models.RecipeRecord) Arc {
	return Arc{
		StartLat:        rec.Latitude,
		StartLng:        rec.Longitude,
		EndLat:          clampLat(rec.Latitude + 8),
		EndLng:          rec.Longitude,
		Color:           ColorSelected,
		DashAnimateTime: DefaultPulseDuration,
	}
}

// clampLat keeps a latitude within the valid [-90, 90] range
func clampLat(lat float64) float64 {
	if lat > 90 {
		return 90
	}
	if lat < -90 {
		return -90
	}
	return lat
}
