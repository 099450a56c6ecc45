package maprender

import (
	"fmt"
	"html"
	"strings"

	"realtymap/internal/model"
	"realtymap/internal/utils"
)

// Popup and tooltip fragments are assembled in Go and shipped to the page as
// strings; every store-sourced value is escaped before it touches markup.

const crimeImpactPlaceholder = "No crime data"

func buildAnalysisPopup(a *model.AnalyzedListing) string {
	var b strings.Builder
	b.WriteString(`<div style='font-family: "Univers Roman", Helvetica, sans-serif; font-size: 18px;'>`)

	if a.IsTopPick() {
		b.WriteString(`<div style='background:#FFD700; color:#333; font-weight:bold; padding:4px 8px; border-radius:4px; margin-bottom:6px;'>&#11088; TOP PICK</div>`)
	}

	rating := strings.ToUpper(strOr(a.MarketExceptionality, "unrated"))
	fmt.Fprintf(&b, "<b>%s</b><br>", html.EscapeString(rating))

	crime := crimeImpactPlaceholder
	if a.CrimeImpact != nil && strings.TrimSpace(*a.CrimeImpact) != "" {
		crime = *a.CrimeImpact
	}
	fmt.Fprintf(&b, "<b>Crime:</b> %s<br>", html.EscapeString(crime))
	fmt.Fprintf(&b, "<b>City:</b> %s<br>", html.EscapeString(strOr(a.City, "")))
	fmt.Fprintf(&b, "<b>Price:</b> %s<br>", utils.FormatPrice(floatOr(a.Price, 0)))
	fmt.Fprintf(&b, "<b>Beds/Baths:</b> %d/%d<br>", intOr(a.Bedrooms, 0), intOr(a.Bathrooms, 0))
	fmt.Fprintf(&b, "<b>Sqft:</b> %s<br>", sqftOrNA(a.Sqft))
	fmt.Fprintf(&b, "<b>Analyzed At:</b> %s<br>", html.EscapeString(strOr(a.AnalyzedAt, "")))
	fmt.Fprintf(&b, "<b>Address:</b> %s", html.EscapeString(strOr(a.Address, "")))

	b.WriteString("</div>")
	return b.String()
}

func buildAnalysisTooltip(a *model.AnalyzedListing) string {
	addr := html.EscapeString(strOr(a.Address, ""))
	if a.IsTopPick() {
		return "&#11088; Top Pick: " + addr
	}
	return addr
}

func buildListingPopup(l *model.Listing) string {
	var b strings.Builder
	b.WriteString(`<div style='font-family: Helvetica, sans-serif; font-size: 14px;'>`)
	fmt.Fprintf(&b, "<b>Address:</b> %s<br>", html.EscapeString(strOr(l.Address, "")))
	fmt.Fprintf(&b, "<b>Price:</b> %s<br>", utils.FormatPrice(floatOr(l.Price, 0)))
	fmt.Fprintf(&b, "<b>Beds/Baths:</b> %d/%d<br>", intOr(l.Bedrooms, 0), intOr(l.Bathrooms, 0))
	fmt.Fprintf(&b, "<b>Sqft:</b> %s", sqftOrNA(l.Sqft))
	b.WriteString("</div>")
	return b.String()
}

func buildListingTooltip(l *model.Listing) string {
	return utils.FormatPrice(floatOr(l.Price, 0))
}

func buildCrimeClusterPopup(c *model.CrimeCluster) string {
	var b strings.Builder
	b.WriteString(`<div style='font-family: Helvetica, sans-serif; font-size: 14px;'>`)
	fmt.Fprintf(&b, "<b>Crime Cluster:</b> %s<br>", html.EscapeString(c.CrimeType))
	fmt.Fprintf(&b, "<b>Incidents:</b> %d<br>", intOr(c.IncidentCount, 0))
	fmt.Fprintf(&b, "<b>Analyzed At:</b> %s<br>", html.EscapeString(strOr(c.AnalyzedAt, "")))
	fmt.Fprintf(&b, "<b>Description:</b> %s", html.EscapeString(strOr(c.ClusterDescription, "")))
	b.WriteString("</div>")
	return b.String()
}

// sqftOrNA renders a formatted square footage, or "N/A" when unknown.
func sqftOrNA(sqft *float64) string {
	if sqft == nil {
		return "N/A"
	}
	return utils.FormatSqft(*sqft)
}

func strOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func floatOr(f *float64, fallback float64) float64 {
	if f == nil {
		return fallback
	}
	return *f
}

func intOr(i *int, fallback int) int {
	if i == nil {
		return fallback
	}
	return *i
}
