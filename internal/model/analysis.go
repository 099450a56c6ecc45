package model

import "strings"

// TopPickSentinel is the exact value the analysis pipeline writes into
// listing_analysis.top_pick for flagged listings. Anything else (including
// NULL) means the listing is not a top pick.
const TopPickSentinel = "Top Pick"

// Market exceptionality values as stored by the analysis pipeline. Matching
// is tolerant: case-insensitive substring, since upstream occasionally wraps
// the rating in extra prose.
const (
	RatingGoodDeal    = "good deal"
	RatingAverageDeal = "average deal"
	RatingBadDeal     = "bad deal"
)

// AnalyzedListing is a listing_analysis row: a listing augmented with market
// exceptionality, crime impact and the top-pick flag.
type AnalyzedListing struct {
	Address              *string  `json:"address,omitempty" db:"address"`
	City                 *string  `json:"city,omitempty" db:"city"`
	Price                *float64 `json:"price,omitempty" db:"price"`
	Bedrooms             *int     `json:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms            *int     `json:"bathrooms,omitempty" db:"bathrooms"`
	Sqft                 *float64 `json:"sqft,omitempty" db:"sqft"`
	Latitude             *string  `json:"latitude,omitempty" db:"latitude"`
	Longitude            *string  `json:"longitude,omitempty" db:"longitude"`
	MarketExceptionality *string  `json:"market_exceptionality,omitempty" db:"market_exceptionality"`
	CrimeImpact          *string  `json:"crime_impact,omitempty" db:"crime_impact"`
	TopPick              *string  `json:"top_pick,omitempty" db:"top_pick"`
	AnalyzedAt           *string  `json:"analyzed_at,omitempty" db:"analyzed_at"`
}

// IsTopPick reports whether the stored top_pick value equals the sentinel.
func (a *AnalyzedListing) IsTopPick() bool {
	return a.TopPick != nil && *a.TopPick == TopPickSentinel
}

// Rating returns the normalized market exceptionality ("" when unset).
func (a *AnalyzedListing) Rating() string {
	if a.MarketExceptionality == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*a.MarketExceptionality))
}
