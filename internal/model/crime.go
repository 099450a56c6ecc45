package model

// CrimeCluster is a crime_analysis row: an aggregated cluster of incidents
// of one crime type, positioned at the cluster centroid.
type CrimeCluster struct {
	CrimeType          string  `json:"crime_type" db:"crime_type"`
	IncidentCount      *int    `json:"incident_count,omitempty" db:"incident_count"`
	ClusterDescription *string `json:"cluster_description,omitempty" db:"cluster_description"`
	Latitude           *string `json:"latitude,omitempty" db:"latitude"`
	Longitude          *string `json:"longitude,omitempty" db:"longitude"`
	AnalyzedAt         *string `json:"analyzed_at,omitempty" db:"analyzed_at"`
}

// CrimeArea is a crime_areas row: a coverage polygon for one crime type,
// stored as WKT text.
type CrimeArea struct {
	CrimeType string `json:"crime_type" db:"crime_type"`
	Geometry  string `json:"geometry" db:"geometry"`
}
