package maprender

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"realtymap/internal/model"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

// Marker kinds understood by the page script.
const (
	markerKindIcon   = "icon"   // awesome-markers pin with a font-awesome glyph
	markerKindDiv    = "div"    // custom HTML div icon (top picks)
	markerKindCircle = "circle" // plain circle marker
)

// Marker is one point on the map, fully styled server-side.
type Marker struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Kind    string  `json:"kind"`
	Color   string  `json:"color"`
	Icon    string  `json:"icon,omitempty"`
	HTML    string  `json:"html,omitempty"`
	Radius  int     `json:"radius,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
	Popup   string  `json:"popup"`
	Tooltip string  `json:"tooltip,omitempty"`
}

// Layer is a named overlay of markers, clustered client-side.
type Layer struct {
	Name      string   `json:"name"`
	Show      bool     `json:"show"`
	Clustered bool     `json:"clustered"`
	Markers   []Marker `json:"markers"`
}

// AreaFeature is a filled polygon overlay (crime coverage area).
type AreaFeature struct {
	Color    string          `json:"color"`
	Tooltip  string          `json:"tooltip"`
	Geometry json.RawMessage `json:"geometry"`
}

// Map is the renderable map document handed to the page template.
type Map struct {
	CenterLat float64       `json:"center_lat"`
	CenterLon float64       `json:"center_lon"`
	Zoom      int           `json:"zoom"`
	TileURL   string        `json:"tile_url"`
	TileAttr  string        `json:"tile_attr"`
	Layers    []Layer       `json:"layers"`
	Areas     []AreaFeature `json:"areas"`
}

// Option adjusts map construction.
type Option func(*builder)

type builder struct {
	zoom          int
	centerLat     float64
	centerLon     float64
	tiles         string
	crimeClusters []model.CrimeCluster
	crimeAreas    []model.CrimeArea
}

// WithZoom overrides the default initial zoom level.
func WithZoom(zoom int) Option {
	return func(b *builder) { b.zoom = zoom }
}

// WithDefaultCenter sets the fallback center used when no input row yields
// usable coordinates.
func WithDefaultCenter(lat, lon float64) Option {
	return func(b *builder) { b.centerLat, b.centerLon = lat, lon }
}

// WithTiles selects the base tile layer by name.
func WithTiles(name string) Option {
	return func(b *builder) { b.tiles = name }
}

// WithCrimeClusters adds the crime cluster overlay.
func WithCrimeClusters(clusters []model.CrimeCluster) Option {
	return func(b *builder) { b.crimeClusters = clusters }
}

// WithCrimeAreas adds the crime coverage polygon overlay.
func WithCrimeAreas(areas []model.CrimeArea) Option {
	return func(b *builder) { b.crimeAreas = areas }
}

// Defaults when no option overrides them; the center is the continental US
// centroid.
const (
	DefaultCenterLat = 37.0902
	DefaultCenterLon = -95.7129
	DefaultZoom      = 7
	DefaultTiles     = "CartoDB Positron"
)

// Build assembles the layered map from the analysis set and the full listing
// set. Rows whose coordinates fail numeric coercion are dropped; individual
// records that cannot be styled are logged and skipped without aborting the
// batch.
func Build(analysis []model.AnalyzedListing, listings []model.Listing, opts ...Option) *Map {
	log.Println("🔄 Starting map build")

	b := &builder{
		zoom:      DefaultZoom,
		centerLat: DefaultCenterLat,
		centerLon: DefaultCenterLon,
		tiles:     DefaultTiles,
	}
	for _, opt := range opts {
		opt(b)
	}

	analysisLayer := buildAnalysisLayer(analysis)
	listingsLayer := buildListingsLayer(listings)

	centerLat, centerLon := b.centerLat, b.centerLon
	if lat, lon, ok := meanCenter(analysisLayer.Markers); ok {
		centerLat, centerLon = lat, lon
	} else if lat, lon, ok := meanCenter(listingsLayer.Markers); ok {
		centerLat, centerLon = lat, lon
	}
	log.Printf("📍 Map center set at latitude: %f, longitude: %f", centerLat, centerLon)

	tileURL, tileAttr := tileSource(b.tiles)

	m := &Map{
		CenterLat: centerLat,
		CenterLon: centerLon,
		Zoom:      b.zoom,
		TileURL:   tileURL,
		TileAttr:  tileAttr,
		Layers:    []Layer{analysisLayer, listingsLayer},
	}

	if b.crimeClusters != nil {
		m.Layers = append(m.Layers, buildCrimeClusterLayer(b.crimeClusters))
	}
	if b.crimeAreas != nil {
		m.Areas = buildCrimeAreaFeatures(b.crimeAreas)
	}

	log.Printf("✅ Map built with %d layer(s) and %d area polygon(s).", len(m.Layers), len(m.Areas))
	return m
}

func buildAnalysisLayer(analysis []model.AnalyzedListing) Layer {
	layer := Layer{Name: "Listing Analysis", Show: true, Clustered: true, Markers: []Marker{}}
	for i := range analysis {
		marker, err := buildAnalysisMarker(&analysis[i])
		if err != nil {
			log.Printf("⚠️  Skipping analysis record %q: %v", strOr(analysis[i].Address, "<no address>"), err)
			continue
		}
		layer.Markers = append(layer.Markers, marker)
	}
	return layer
}

func buildAnalysisMarker(a *model.AnalyzedListing) (Marker, error) {
	lat, lon, err := coerceCoords(a.Latitude, a.Longitude)
	if err != nil {
		return Marker{}, err
	}
	if a.Address == nil || strings.TrimSpace(*a.Address) == "" {
		return Marker{}, fmt.Errorf("missing address")
	}

	marker := Marker{
		Lat:     lat,
		Lon:     lon,
		Popup:   buildAnalysisPopup(a),
		Tooltip: buildAnalysisTooltip(a),
	}

	if a.IsTopPick() {
		// Top picks override the rating style entirely: gold glow div icon.
		marker.Kind = markerKindDiv
		marker.Color = topPickColor
		marker.HTML = glowIconHTML
		return marker, nil
	}

	style := styleForRating(a.Rating())
	marker.Kind = markerKindIcon
	marker.Color = style.Color
	marker.Icon = style.Icon
	return marker, nil
}

func buildListingsLayer(listings []model.Listing) Layer {
	layer := Layer{Name: "All Listings", Show: false, Clustered: true, Markers: []Marker{}}
	for i := range listings {
		l := &listings[i]
		lat, lon, err := coerceCoords(l.Latitude, l.Longitude)
		if err != nil {
			log.Printf("⚠️  Skipping listing %q: %v", strOr(l.Address, "<no address>"), err)
			continue
		}
		layer.Markers = append(layer.Markers, Marker{
			Lat:     lat,
			Lon:     lon,
			Kind:    markerKindCircle,
			Color:   "blue",
			Radius:  6,
			Opacity: 0.5,
			Popup:   buildListingPopup(l),
			Tooltip: buildListingTooltip(l),
		})
	}
	return layer
}

func buildCrimeClusterLayer(clusters []model.CrimeCluster) Layer {
	layer := Layer{Name: "Crime Clusters", Show: true, Clustered: true, Markers: []Marker{}}
	for i := range clusters {
		c := &clusters[i]
		lat, lon, err := coerceCoords(c.Latitude, c.Longitude)
		if err != nil {
			log.Printf("⚠️  Skipping crime cluster %q: %v", c.CrimeType, err)
			continue
		}
		layer.Markers = append(layer.Markers, Marker{
			Lat:     lat,
			Lon:     lon,
			Kind:    markerKindCircle,
			Color:   colorForCrimeType(c.CrimeType),
			Radius:  8,
			Opacity: 0.7,
			Popup:   buildCrimeClusterPopup(c),
			Tooltip: "Crime Cluster: " + c.CrimeType,
		})
	}
	return layer
}

func buildCrimeAreaFeatures(areas []model.CrimeArea) []AreaFeature {
	features := make([]AreaFeature, 0, len(areas))
	for i := range areas {
		a := &areas[i]
		geom, err := wkt.Unmarshal(a.Geometry)
		if err != nil {
			log.Printf("⚠️  Skipping crime area %q: bad WKT: %v", a.CrimeType, err)
			continue
		}
		raw, err := geojson.NewGeometry(geom).MarshalJSON()
		if err != nil {
			log.Printf("⚠️  Skipping crime area %q: %v", a.CrimeType, err)
			continue
		}
		features = append(features, AreaFeature{
			Color:    colorForCrimeArea(a.CrimeType),
			Tooltip:  a.CrimeType,
			Geometry: raw,
		})
	}
	return features
}

// coerceCoords parses raw coordinate text into floats. NaN and infinities
// count as coercion failures, as do out-of-range values.
func coerceCoords(latStr, lonStr *string) (float64, float64, error) {
	if latStr == nil || lonStr == nil {
		return 0, 0, fmt.Errorf("missing coordinates")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(*latStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad latitude %q: %w", *latStr, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(*lonStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad longitude %q: %w", *lonStr, err)
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("latitude %f out of range", lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("longitude %f out of range", lon)
	}
	return lat, lon, nil
}

func meanCenter(markers []Marker) (float64, float64, bool) {
	if len(markers) == 0 {
		return 0, 0, false
	}
	var sumLat, sumLon float64
	for _, m := range markers {
		sumLat += m.Lat
		sumLon += m.Lon
	}
	n := float64(len(markers))
	return sumLat / n, sumLon / n, true
}
