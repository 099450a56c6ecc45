package repository

import (
	"fmt"
	"log"

	"realtymap/internal/model"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Each loader opens its own connection, runs one fixed read query, and closes
// the connection before returning. Connection and query failures are logged
// and propagated; nothing is retried. The store is never written to.

const listingsQuery = `
	SELECT
		address,
		price,
		bedrooms,
		bathrooms,
		sqft,
		latitude,
		longitude
	FROM realty_listings
	WHERE latitude IS NOT NULL
	  AND longitude IS NOT NULL
`

const analysisQuery = `
	SELECT
		address,
		city,
		price,
		bedrooms,
		bathrooms,
		sqft,
		latitude,
		longitude,
		market_exceptionality,
		crime_impact,
		top_pick,
		analyzed_at
	FROM listing_analysis
	WHERE latitude IS NOT NULL
	  AND longitude IS NOT NULL
`

const crimeClustersQuery = `
	SELECT
		crime_type,
		incident_count,
		cluster_description,
		latitude,
		longitude,
		analyzed_at
	FROM crime_analysis
`

const crimeAreasQuery = `
	SELECT crime_type, geometry FROM crime_areas
`

const cityLocationsQuery = `
	SELECT city, AVG(latitude) AS lat, AVG(longitude) AS lon
	FROM realty_listings
	WHERE latitude IS NOT NULL AND longitude IS NOT NULL AND city IS NOT NULL
	GROUP BY city
`

func connect(dbPath, what string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		log.Printf("❌ Error connecting to the database for %s: %v", what, err)
		return nil, fmt.Errorf("connect database for %s: %w", what, err)
	}
	log.Printf("✅ Database connection established for %s.", what)
	return db, nil
}

func closeDB(db *sqlx.DB, what string) {
	if err := db.Close(); err != nil {
		log.Printf("⚠️  Error closing database for %s: %v", what, err)
		return
	}
	log.Printf("🔒 Database connection closed for %s.", what)
}

// FetchListings retrieves all property records with valid coordinates from
// the realty_listings table.
func FetchListings(dbPath string) ([]model.Listing, error) {
	log.Println("🔄 Starting FetchListings()")
	db, err := connect(dbPath, "property data")
	if err != nil {
		return nil, err
	}

	var listings []model.Listing
	if err := db.Select(&listings, listingsQuery); err != nil {
		log.Printf("❌ Error executing query for property data: %v", err)
		closeDB(db, "property data")
		return nil, fmt.Errorf("query realty_listings: %w", err)
	}
	log.Printf("✅ Query executed successfully. Retrieved %d property records.", len(listings))

	closeDB(db, "property data")
	return listings, nil
}

// FetchListingAnalysis retrieves analyzed listings with valid coordinates
// from the listing_analysis table.
func FetchListingAnalysis(dbPath string) ([]model.AnalyzedListing, error) {
	log.Println("🔄 Starting FetchListingAnalysis()")
	db, err := connect(dbPath, "listing analysis")
	if err != nil {
		return nil, err
	}

	var analyzed []model.AnalyzedListing
	if err := db.Select(&analyzed, analysisQuery); err != nil {
		log.Printf("❌ Error executing query for listing analysis: %v", err)
		closeDB(db, "listing analysis")
		return nil, fmt.Errorf("query listing_analysis: %w", err)
	}
	log.Printf("✅ Query executed successfully. Retrieved %d listing analysis records.", len(analyzed))

	closeDB(db, "listing analysis")
	return analyzed, nil
}

// FetchCrimeClusters retrieves crime cluster records from the crime_analysis
// table.
func FetchCrimeClusters(dbPath string) ([]model.CrimeCluster, error) {
	log.Println("🔄 Starting FetchCrimeClusters()")
	db, err := connect(dbPath, "crime clusters")
	if err != nil {
		return nil, err
	}

	var clusters []model.CrimeCluster
	if err := db.Select(&clusters, crimeClustersQuery); err != nil {
		log.Printf("❌ Error executing query for crime clusters: %v", err)
		closeDB(db, "crime clusters")
		return nil, fmt.Errorf("query crime_analysis: %w", err)
	}
	log.Printf("✅ Query executed successfully. Retrieved %d crime cluster record(s).", len(clusters))

	closeDB(db, "crime clusters")
	return clusters, nil
}

// FetchCrimeAreas retrieves crime coverage polygons (WKT) from the
// crime_areas table.
func FetchCrimeAreas(dbPath string) ([]model.CrimeArea, error) {
	log.Println("🔄 Starting FetchCrimeAreas()")
	db, err := connect(dbPath, "crime areas")
	if err != nil {
		return nil, err
	}

	var areas []model.CrimeArea
	if err := db.Select(&areas, crimeAreasQuery); err != nil {
		log.Printf("❌ Error executing query for crime areas: %v", err)
		closeDB(db, "crime areas")
		return nil, fmt.Errorf("query crime_areas: %w", err)
	}
	log.Printf("✅ Query executed successfully. Retrieved %d crime area polygon(s).", len(areas))

	closeDB(db, "crime areas")
	return areas, nil
}

// FetchCityLocations retrieves distinct cities with the mean coordinates of
// their listings, for the map page's city zoom dropdown.
func FetchCityLocations(dbPath string) ([]model.CityLocation, error) {
	log.Println("🔄 Starting FetchCityLocations()")
	db, err := connect(dbPath, "city locations")
	if err != nil {
		return nil, err
	}

	var cities []model.CityLocation
	if err := db.Select(&cities, cityLocationsQuery); err != nil {
		log.Printf("❌ Error executing query for city locations: %v", err)
		closeDB(db, "city locations")
		return nil, fmt.Errorf("query city locations: %w", err)
	}
	log.Printf("✅ Query executed successfully. Retrieved %d city location(s).", len(cities))

	closeDB(db, "city locations")
	return cities, nil
}
