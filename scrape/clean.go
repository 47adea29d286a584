package scrape

import (
	"regexp"
	"strconv"
	"strings"
)

// Scraped pages render prices and counts in wildly inconsistent shapes:
// "₹1,29,900", "64900₹64900" (concatenated duplicates), "4.5 out of 5
// stars", "1.2K ratings". The cleaners below normalize them into numbers,
// returning the zero value when nothing usable can be recovered.

var (
	currencyRe = regexp.MustCompile(`[₹$€£]`)
	numberRe   = regexp.MustCompile(`\d+\.?\d*`)
	reviewsRe  = regexp.MustCompile(`[^\d.K]`)
)

// Plausible price bounds; anything outside is scrape noise (a model number
// or a concatenation artifact), not a price.
const (
	minPlausiblePrice = 100
	maxPlausiblePrice = 100_000_000
)

// CleanPrice extracts the first plausible price from a raw price string.
// Concatenated duplicates are split on currency symbols and the first
// numeric part in range wins. Returns 0 when no usable price is found.
func CleanPrice(raw string) float64 {
	parts := currencyRe.Split(strings.TrimSpace(raw), -1)

	for _, part := range parts {
		cleaned := strings.NewReplacer(",", "", " ", "").Replace(strings.TrimSpace(part))
		if cleaned == "" {
			continue
		}

		price, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			continue
		}
		if price >= minPlausiblePrice && price <= maxPlausiblePrice {
			return price
		}
	}
	return 0
}

// CleanRating extracts the first number from a rating string such as
// "4.5 out of 5 stars". Returns 0 when none is found.
func CleanRating(raw string) float64 {
	match := numberRe.FindString(strings.TrimSpace(raw))
	if match == "" {
		return 0
	}
	rating, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return rating
}

// CleanReviews extracts a review count from strings like "1,245 ratings"
// or "1.2K". Returns 0 when none is found.
func CleanReviews(raw string) int {
	cleaned := reviewsRe.ReplaceAllString(strings.ToUpper(strings.TrimSpace(raw)), "")
	if cleaned == "" {
		return 0
	}

	if strings.Contains(cleaned, "K") {
		n, err := strconv.ParseFloat(strings.ReplaceAll(cleaned, "K", ""), 64)
		if err != nil {
			return 0
		}
		return int(n * 1000)
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return int(n)
}
