package maprender

import (
	"crypto/sha256"
	"encoding/hex"
	"hash/fnv"
	"strings"

	"realtymap/internal/model"
)

// MarkerStyle is the icon/color pair applied to an analysis marker.
type MarkerStyle struct {
	Color string
	Icon  string
}

// topPickColor is the override color for flagged listings.
const topPickColor = "#FFD700"

// styleForRating maps a market exceptionality value to marker styling.
// Matching is a case-insensitive substring check, since upstream sometimes
// wraps the rating in extra prose; anything unrecognized falls through to
// the gray question mark.
func styleForRating(rating string) MarkerStyle {
	r := strings.ToLower(rating)
	switch {
	case strings.Contains(r, model.RatingGoodDeal):
		return MarkerStyle{Color: "green", Icon: "arrow-up"}
	case strings.Contains(r, model.RatingAverageDeal):
		return MarkerStyle{Color: "orange", Icon: "arrow-right"}
	case strings.Contains(r, model.RatingBadDeal):
		return MarkerStyle{Color: "red", Icon: "arrow-down"}
	default:
		return MarkerStyle{Color: "gray", Icon: "question"}
	}
}

// glowIconHTML is the animated div icon used for top picks in place of the
// standard marker. The pulse keyframes live in the page stylesheet.
const glowIconHTML = `<div class="top-pick-glow"><i class="fa fa-star"></i></div>`

// crimeClusterPalette mirrors the marker colors Leaflet's awesome-markers
// set supports; cluster colors are picked deterministically per crime type.
var crimeClusterPalette = []string{
	"red", "blue", "green", "purple", "orange", "darkred", "lightred", "beige",
	"darkblue", "darkgreen", "cadetblue", "darkpurple", "pink", "lightblue",
	"lightgreen", "gray", "black",
}

// colorForCrimeType deterministically assigns a palette color to a crime type.
func colorForCrimeType(crimeType string) string {
	h := fnv.New32a()
	h.Write([]byte(crimeType))
	return crimeClusterPalette[int(h.Sum32())%len(crimeClusterPalette)]
}

// colorForCrimeArea derives a stable hex fill color for a crime-area polygon
// from the first six hex digits of the crime type's SHA-256.
func colorForCrimeArea(crimeType string) string {
	sum := sha256.Sum256([]byte(crimeType))
	return "#" + hex.EncodeToString(sum[:3])
}
