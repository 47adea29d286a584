package compare

import (
	"fmt"
	"math"

	"github.com/pricelens/pricelens/core"
)

// Recommendation summarizes which of two matched listings is the better
// buy. A field left as the zero value means the underlying signal was
// unavailable on at least one side, or the two sides were equal.
type Recommendation struct {
	// CheaperPlatform names the marketplace with the lower price.
	CheaperPlatform core.Platform

	// CheaperByPercent is the saving relative to the pricier listing,
	// rounded to two decimals.
	CheaperByPercent float64

	// BetterRating names the marketplace whose listing is rated higher.
	BetterRating core.Platform

	// BetterReviews names the marketplace whose listing has more reviews.
	BetterReviews core.Platform

	// Winner is the marketplace with the higher weighted score. Empty
	// means the two listings scored even and either is a reasonable buy.
	Winner core.Platform

	// Reasons holds one human-readable line per signal that contributed
	// to the verdict.
	Reasons []string
}

// Tied reports whether neither platform came out ahead.
func (r *Recommendation) Tied() bool {
	return r.Winner == ""
}

// Recommend weighs two matched listings from different marketplaces against
// each other. Price is the dominant signal: the cheaper platform earns two
// points, while the better rating and the larger review count earn one point
// each. A signal only counts when both listings carry it; scraped pages
// frequently omit price or rating, and a missing value must not hand the
// point to the other side.
func Recommend(a, b *core.ListingRecord) *Recommendation {
	rec := &Recommendation{}
	scores := map[core.Platform]int{}

	if a.Price > 0 && b.Price > 0 && a.Price != b.Price {
		cheaper, pricier := a, b
		if b.Price < a.Price {
			cheaper, pricier = b, a
		}
		rec.CheaperPlatform = cheaper.Platform
		rec.CheaperByPercent = round2((pricier.Price - cheaper.Price) / pricier.Price * 100)
		scores[cheaper.Platform] += 2
		rec.Reasons = append(rec.Reasons, fmt.Sprintf("%s is %.2f%% cheaper (%.2f vs %.2f)",
			cheaper.Platform, rec.CheaperByPercent, cheaper.Price, pricier.Price))
	}

	if a.Rating > 0 && b.Rating > 0 && a.Rating != b.Rating {
		better := a
		if b.Rating > a.Rating {
			better = b
		}
		rec.BetterRating = better.Platform
		scores[better.Platform]++
		rec.Reasons = append(rec.Reasons, fmt.Sprintf("%s has the better rating (%.1f vs %.1f)",
			better.Platform, max(a.Rating, b.Rating), min(a.Rating, b.Rating)))
	}

	if a.ReviewCount > 0 && b.ReviewCount > 0 && a.ReviewCount != b.ReviewCount {
		better := a
		if b.ReviewCount > a.ReviewCount {
			better = b
		}
		rec.BetterReviews = better.Platform
		scores[better.Platform]++
		rec.Reasons = append(rec.Reasons, fmt.Sprintf("%s has more reviews (%d vs %d)",
			better.Platform, max(a.ReviewCount, b.ReviewCount), min(a.ReviewCount, b.ReviewCount)))
	}

	switch {
	case scores[a.Platform] > scores[b.Platform]:
		rec.Winner = a.Platform
	case scores[b.Platform] > scores[a.Platform]:
		rec.Winner = b.Platform
	default:
		rec.Reasons = append(rec.Reasons, "both listings are of similar quality")
	}
	return rec
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
