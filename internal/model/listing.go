package model

// Listing represents a property record from the realty_listings table.
// Nullable columns map to pointer fields. Latitude and longitude are carried
// as raw text from the store; the map renderer coerces them to numbers and
// drops rows that fail coercion.
type Listing struct {
	Address   *string  `json:"address,omitempty" db:"address"`
	Price     *float64 `json:"price,omitempty" db:"price"`
	Bedrooms  *int     `json:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms *int     `json:"bathrooms,omitempty" db:"bathrooms"`
	Sqft      *float64 `json:"sqft,omitempty" db:"sqft"`
	Latitude  *string  `json:"latitude,omitempty" db:"latitude"`
	Longitude *string  `json:"longitude,omitempty" db:"longitude"`
}

// CityLocation is a distinct city with the mean coordinates of its listings,
// used to drive the map page's city zoom dropdown.
type CityLocation struct {
	City      string  `json:"city" db:"city"`
	Latitude  float64 `json:"lat" db:"lat"`
	Longitude float64 `json:"lon" db:"lon"`
}
