package repository

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// seedTestDB creates a throwaway SQLite database with the production schema
// and a few rows, including rows with NULL coordinates that the loaders must
// filter out.
func seedTestDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test_analysis_db.db")
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	defer db.Close()

	schema := `
	CREATE TABLE realty_listings (
		address TEXT, price REAL, bedrooms INTEGER, bathrooms INTEGER,
		sqft REAL, city TEXT, latitude REAL, longitude REAL
	);
	CREATE TABLE listing_analysis (
		address TEXT, city TEXT, price REAL, bedrooms INTEGER, bathrooms INTEGER,
		sqft REAL, latitude REAL, longitude REAL,
		market_exceptionality TEXT, crime_impact TEXT, top_pick TEXT, analyzed_at TEXT
	);
	CREATE TABLE crime_analysis (
		crime_type TEXT, incident_count INTEGER, cluster_description TEXT,
		latitude REAL, longitude REAL, analyzed_at TEXT
	);
	CREATE TABLE crime_areas (crime_type TEXT, geometry TEXT);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	inserts := []string{
		`INSERT INTO realty_listings VALUES
			('12 Oak St', 250000, 3, 2, 1500, 'Austin', 30.2672, -97.7431),
			('9 Elm Ave', 310000, 4, 3, NULL, 'Austin', 30.27, -97.75),
			('No Coords Rd', 199000, 2, 1, 900, 'Dallas', NULL, NULL),
			('Half Coords Ln', 180000, 2, 1, 850, 'Dallas', 32.78, NULL)`,
		`INSERT INTO listing_analysis VALUES
			('12 Oak St', 'Austin', 250000, 3, 2, 1500, 30.2672, -97.7431,
			 'Good Deal', 'Low Crime Impact', 'Top Pick', '2024-01-15 10:00:00'),
			('9 Elm Ave', 'Austin', 310000, 4, 3, NULL, 30.27, -97.75,
			 'Bad Deal', NULL, NULL, '2024-01-16 11:00:00'),
			('Ghost House', 'Dallas', 100000, 1, 1, 500, NULL, NULL,
			 'Average Deal', NULL, NULL, '2024-01-17 12:00:00')`,
		`INSERT INTO crime_analysis VALUES
			('Theft', 42, 'Downtown theft cluster', 30.26, -97.74, '2024-01-10 09:00:00')`,
		`INSERT INTO crime_areas VALUES
			('Theft', 'POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))')`,
	}
	for _, stmt := range inserts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to seed data: %v", err)
		}
	}

	return path
}

func TestFetchListings_FiltersNullCoordinates(t *testing.T) {
	path := seedTestDB(t)

	listings, err := FetchListings(path)
	if err != nil {
		t.Fatalf("FetchListings failed: %v", err)
	}

	if len(listings) != 2 {
		t.Fatalf("Expected 2 listings with coordinates, got %d", len(listings))
	}
	for _, l := range listings {
		if l.Latitude == nil || l.Longitude == nil {
			t.Errorf("Listing %v has nil coordinates", l.Address)
		}
	}
}

func TestFetchListings_NullableSqft(t *testing.T) {
	path := seedTestDB(t)

	listings, err := FetchListings(path)
	if err != nil {
		t.Fatalf("FetchListings failed: %v", err)
	}

	var withSqft, withoutSqft int
	for _, l := range listings {
		if l.Sqft != nil {
			withSqft++
		} else {
			withoutSqft++
		}
	}
	if withSqft != 1 || withoutSqft != 1 {
		t.Errorf("Expected 1 listing with sqft and 1 without, got %d/%d", withSqft, withoutSqft)
	}
}

func TestFetchListingAnalysis(t *testing.T) {
	path := seedTestDB(t)

	analyzed, err := FetchListingAnalysis(path)
	if err != nil {
		t.Fatalf("FetchListingAnalysis failed: %v", err)
	}

	if len(analyzed) != 2 {
		t.Fatalf("Expected 2 analysis records with coordinates, got %d", len(analyzed))
	}

	var topPicks int
	for _, a := range analyzed {
		if a.IsTopPick() {
			topPicks++
			if a.CrimeImpact == nil || *a.CrimeImpact != "Low Crime Impact" {
				t.Errorf("Top pick missing expected crime impact, got %v", a.CrimeImpact)
			}
		}
	}
	if topPicks != 1 {
		t.Errorf("Expected exactly 1 top pick, got %d", topPicks)
	}
}

func TestFetchCrimeClusters(t *testing.T) {
	path := seedTestDB(t)

	clusters, err := FetchCrimeClusters(path)
	if err != nil {
		t.Fatalf("FetchCrimeClusters failed: %v", err)
	}
	if len(clusters) != 1 {
		t.Fatalf("Expected 1 crime cluster, got %d", len(clusters))
	}
	if clusters[0].CrimeType != "Theft" {
		t.Errorf("Expected crime type Theft, got %q", clusters[0].CrimeType)
	}
	if clusters[0].IncidentCount == nil || *clusters[0].IncidentCount != 42 {
		t.Errorf("Expected incident count 42, got %v", clusters[0].IncidentCount)
	}
}

func TestFetchCrimeAreas(t *testing.T) {
	path := seedTestDB(t)

	areas, err := FetchCrimeAreas(path)
	if err != nil {
		t.Fatalf("FetchCrimeAreas failed: %v", err)
	}
	if len(areas) != 1 {
		t.Fatalf("Expected 1 crime area, got %d", len(areas))
	}
	if areas[0].Geometry == "" {
		t.Error("Expected non-empty WKT geometry")
	}
}

func TestFetchCityLocations(t *testing.T) {
	path := seedTestDB(t)

	cities, err := FetchCityLocations(path)
	if err != nil {
		t.Fatalf("FetchCityLocations failed: %v", err)
	}

	// Dallas rows lack coordinates, so only Austin qualifies.
	if len(cities) != 1 {
		t.Fatalf("Expected 1 city, got %d", len(cities))
	}
	if cities[0].City != "Austin" {
		t.Errorf("Expected Austin, got %q", cities[0].City)
	}
	if cities[0].Latitude < 30.26 || cities[0].Latitude > 30.28 {
		t.Errorf("Unexpected mean latitude %f", cities[0].Latitude)
	}
}

func TestFetchListings_ConnectionFailure(t *testing.T) {
	// A path inside a directory that does not exist cannot be opened.
	_, err := FetchListings(filepath.Join(t.TempDir(), "no", "such", "dir", "db.db"))
	if err == nil {
		t.Fatal("Expected connection error for unreachable database path")
	}
}

func TestFetchListings_MissingTable(t *testing.T) {
	// A fresh empty database has no realty_listings table, so the query
	// itself must fail and be propagated.
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to create empty database: %v", err)
	}
	db.Close()

	if _, err := FetchListings(path); err == nil {
		t.Fatal("Expected query error for missing table")
	}
}
