package maprender

import (
	"strings"
	"testing"

	"realtymap/internal/model"
)

func TestRender_ProducesStandalonePage(t *testing.T) {
	analysis := []model.AnalyzedListing{analyzedFixture("12 Oak St", "30.2672", "-97.7431", "good deal")}
	cities := []model.CityLocation{{City: "Austin", Latitude: 30.2672, Longitude: -97.7431}}

	m := Build(analysis, nil)

	var sb strings.Builder
	if err := m.Render(&sb, cities); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	page := sb.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"Real Estate Listing Analysis Map",
		"leaflet.markercluster",
		"leaflet.awesome-markers",
		"top-pick-pulse",
		"cityDropdown",
		"Listing Analysis",
		"12 Oak St",
		"Austin",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Rendered page missing %q", want)
		}
	}
}

func TestRender_EmptyMap(t *testing.T) {
	m := Build(nil, nil)

	var sb strings.Builder
	if err := m.Render(&sb, nil); err != nil {
		t.Fatalf("Render of empty map failed: %v", err)
	}
	if !strings.Contains(sb.String(), "All Listings") {
		t.Error("Expected layer definitions even for an empty map")
	}
}

func TestTileSource_UnknownFallsBack(t *testing.T) {
	url, attr := tileSource("No Such Tiles")
	wantURL, wantAttr := tileSource(DefaultTiles)
	if url != wantURL || attr != wantAttr {
		t.Error("Unknown tile name should fall back to the default source")
	}
}
