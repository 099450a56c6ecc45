package handler

import (
	"log"
	"net/http"
	"strconv"

	"realtymap/internal/config"
	"realtymap/internal/maprender"
	"realtymap/internal/repository"

	"github.com/gin-gonic/gin"
)

// MapHandler serves the interactive map page
type MapHandler struct {
	dbPath string
	mapCfg config.MapConfig
}

// NewMapHandler creates a new map handler
func NewMapHandler(cfg *config.Config) *MapHandler {
	return &MapHandler{
		dbPath: cfg.Database.Path,
		mapCfg: cfg.Map,
	}
}

// ServePage handles GET / - fetches fresh data and renders the map document.
// Loader failures for the listing layers are fatal to the request; the crime
// area and city lookups degrade to an emptier page.
func (h *MapHandler) ServePage(c *gin.Context) {
	log.Println("🚀 Received request for map page.")

	analysis, err := repository.FetchListingAnalysis(h.dbPath)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error creating map: %v", err)
		return
	}

	listings, err := repository.FetchListings(h.dbPath)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error creating map: %v", err)
		return
	}

	clusters, err := repository.FetchCrimeClusters(h.dbPath)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error creating map: %v", err)
		return
	}

	opts := []maprender.Option{
		maprender.WithDefaultCenter(h.mapCfg.CenterLat, h.mapCfg.CenterLon),
		maprender.WithZoom(h.zoomFor(c)),
		maprender.WithTiles(h.mapCfg.Tiles),
		maprender.WithCrimeClusters(clusters),
	}

	areas, err := repository.FetchCrimeAreas(h.dbPath)
	if err != nil {
		log.Printf("⚠️  Crime areas unavailable, rendering without them: %v", err)
	} else {
		opts = append(opts, maprender.WithCrimeAreas(areas))
	}

	cities, err := repository.FetchCityLocations(h.dbPath)
	if err != nil {
		log.Printf("⚠️  City locations unavailable, dropdown will be empty: %v", err)
		cities = nil
	}

	m := maprender.Build(analysis, listings, opts...)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := m.Render(c.Writer, cities); err != nil {
		// Headers are already out; the most we can do is log.
		log.Printf("❌ Error rendering map page: %v", err)
		return
	}
	log.Println("✅ Serving HTML content.")
}

// zoomFor reads an optional ?zoom= override, falling back to the configured
// default.
func (h *MapHandler) zoomFor(c *gin.Context) int {
	if z := c.Query("zoom"); z != "" {
		if zoom, err := strconv.Atoi(z); err == nil && zoom >= 1 && zoom <= 19 {
			return zoom
		}
		log.Printf("⚠️  Ignoring invalid zoom override %q", c.Query("zoom"))
	}
	return h.mapCfg.Zoom
}
