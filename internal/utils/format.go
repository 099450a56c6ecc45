package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPrice formats a dollar amount with thousands separators and two
// decimal places, e.g. 1234567.5 -> "$1,234,567.50".
func FormatPrice(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole := int64(amount)
	cents := int64(math.Round((amount - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), cents)
}

// FormatSqft formats a square footage value with thousands separators,
// e.g. 12500 -> "1,250" style grouping with no decimals.
func FormatSqft(sqft float64) string {
	return groupThousands(int64(math.Round(sqft)))
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	// Walk from the right, inserting a comma every three digits.
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
