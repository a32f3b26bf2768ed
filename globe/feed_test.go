package globe

import (
	"testing"

	"github.com/coldhands175/globedine/models"
)

func TestBuildPoints(t *testing.T) {
	records := []models.RecipeRecord{
		{ID: "recipe-100", Title: "Carbonara", Country: "Italy", Latitude: 41.9, Longitude: 12.5},
		{ID: "recipe-200", Title: "Tacos", Country: "Mexico", Latitude: 23.6, Longitude: -102.5, Favorite: true},
		{ID: "recipe-300", Title: "Mapo Tofu", Country: "China", Latitude: 35.9, Longitude: 104.2},
	}

	points := BuildPoints(records, "recipe-300")
	if len(points) != 3 {
		t.Fatalf("BuildPoints returned %d points, want 3", len(points))
	}

	base, favorite, selected := points[0], points[1], points[2]

	if base.Color != ColorBase || base.Radius != RadiusBase {
		t.Errorf("plain point = (%s, %v), want (%s, %v)", base.Color, base.Radius, ColorBase, RadiusBase)
	}
	if favorite.Color != ColorFavorite || favorite.Radius != RadiusBase {
		t.Errorf("favorite point = (%s, %v), want (%s, %v)", favorite.Color, favorite.Radius, ColorFavorite, RadiusBase)
	}
	if selected.Color != ColorSelected || selected.Radius != RadiusSelected {
		t.Errorf("selected point = (%s, %v), want (%s, %v)", selected.Color, selected.Radius, ColorSelected, RadiusSelected)
	}

	if base.Lat != 41.9 || base.Lng != 12.5 {
		t.Errorf("point coordinates = (%v, %v), want (41.9, 12.5)", base.Lat, base.Lng)
	}
	if base.Label.ID != "recipe-100" || base.Label.Title != "Carbonara" || base.Label.Country != "Italy" {
		t.Errorf("point label = %+v, want record identity", base.Label)
	}
}

func TestBuildPoints_SelectedWinsOverFavorite(t *testing.T) {
	records := []models.RecipeRecord{
		{ID: "recipe-100", Title: "Carbonara", Favorite: true},
	}

	points := BuildPoints(records, "recipe-100")
	if points[0].Color != ColorSelected {
		t.Errorf("selected favorite color = %s, want %s", points[0].Color, ColorSelected)
	}
	if points[0].Radius != RadiusSelected {
		t.Errorf("selected favorite radius = %v, want %v", points[0].Radius, RadiusSelected)
	}
}

func TestBuildPoints_NoSelection(t *testing.T) {
	records := []models.RecipeRecord{
		{ID: "", Title: "Anonymous"},
	}

	// An empty selection ID must not match a record with an empty ID.
	points := BuildPoints(records, "")
	if points[0].Color != ColorBase {
		t.Errorf("unselected point color = %s, want %s", points[0].Color, ColorBase)
	}
}

func TestBuildPoints_Empty(t *testing.T) {
	points := BuildPoints(nil, "recipe-100")
	if points == nil || len(points) != 0 {
		t.Errorf("BuildPoints(nil) = %v, want empty non-nil slice", points)
	}
}

func TestSelectionPulse(t *testing.T) {
	rec := models.RecipeRecord{ID: "recipe-100", Latitude: 41.9, Longitude: 12.5}

	arc := SelectionPulse(rec)
	if arc.StartLat != 41.9 || arc.StartLng != 12.5 {
		t.Errorf("arc start = (%v, %v), want record location", arc.StartLat, arc.StartLng)
	}
	if arc.EndLat != rec.Latitude+8 || arc.EndLng != 12.5 {
		t.Errorf("arc end = (%v, %v), want (%v, 12.5)", arc.EndLat, arc.EndLng, rec.Latitude+8)
	}
	if arc.Color != ColorSelected {
		t.Errorf("arc color = %s, want %s", arc.Color, ColorSelected)
	}
	if arc.DashAnimateTime != DefaultPulseDuration {
		t.Errorf("arc duration = %v, want %v", arc.DashAnimateTime, DefaultPulseDuration)
	}
}

func TestSelectionPulse_ClampsLatitude(t *testing.T) {
	rec := models.RecipeRecord{ID: "recipe-100", Latitude: 86, Longitude: 0}

	arc := SelectionPulse(rec)
	if arc.EndLat != 90 {
		t.Errorf("arc end latitude = %v, want clamped to 90", arc.EndLat)
	}
}

func TestClampLat(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{45.5, 45.5},
		{95, 90},
		{-95, -90},
		{90, 90},
		{-90, -90},
	}

	for _, tt := range tests {
		if got := clampLat(tt.in); got != tt.want {
			t.Errorf("clampLat(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
