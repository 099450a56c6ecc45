package handler

import (
	"net/http"

	"realtymap/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListingsHandler exposes the raw store rows as JSON
type ListingsHandler struct {
	dbPath string
}

// NewListingsHandler creates a new listings handler
func NewListingsHandler(dbPath string) *ListingsHandler {
	return &ListingsHandler{dbPath: dbPath}
}

// Listings handles GET /api/v1/listings
func (h *ListingsHandler) Listings(c *gin.Context) {
	listings, err := repository.FetchListings(h.dbPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load listings: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings, "count": len(listings)})
}

// Analysis handles GET /api/v1/analysis
func (h *ListingsHandler) Analysis(c *gin.Context) {
	analysis, err := repository.FetchListingAnalysis(h.dbPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load listing analysis: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis, "count": len(analysis)})
}

// CrimeClusters handles GET /api/v1/crime-clusters
func (h *ListingsHandler) CrimeClusters(c *gin.Context) {
	clusters, err := repository.FetchCrimeClusters(h.dbPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load crime clusters: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"crime_clusters": clusters, "count": len(clusters)})
}

// Cities handles GET /api/v1/cities
func (h *ListingsHandler) Cities(c *gin.Context) {
	cities, err := repository.FetchCityLocations(h.dbPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load city locations: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities, "count": len(cities)})
}
