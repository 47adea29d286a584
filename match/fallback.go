package match

import (
	"fmt"
	"strings"

	"github.com/pricelens/pricelens/core"
)

// fallback runs the three-level ladder after the gated scan found no
// eligible pair. Each level takes the first acceptable pair, not the best
// one: the lists are already ranked by query relevance, so the first hit is
// the most relevant pair that satisfies the level. Exactly one level
// produces the result, and with non-empty inputs the last resort always
// does.
func (m *Matcher) fallback(rankedA, rankedB []analyzedListing, rejections []core.Rejection) *core.MatchResult {
	if result := m.colorStorageFallback(rankedA, rankedB); result != nil {
		result.Rejections = rejections
		return result
	}
	if result := m.colorOnlyFallback(rankedA, rankedB); result != nil {
		result.Rejections = rejections
		return result
	}
	return m.lastResort(rankedA, rankedB, rejections)
}

// colorStorageFallback pairs the first listings with matching non-empty
// color and storage and a name similarity of at least 70.
func (m *Matcher) colorStorageFallback(rankedA, rankedB []analyzedListing) *core.MatchResult {
	for _, a := range rankedA {
		for _, b := range rankedB {
			_, similarity := NameSimilarity(a.attrs.BaseName, b.attrs.BaseName)
			if similarity < fallbackL1Threshold {
				continue
			}
			if a.attrs.Color == "" || !strings.EqualFold(a.attrs.Color, b.attrs.Color) {
				continue
			}
			if a.attrs.StorageGB == "" || a.attrs.StorageGB != b.attrs.StorageGB {
				continue
			}

			m.logger.Info("fallback matched on color and storage",
				"color", a.attrs.Color,
				"storage_gb", a.attrs.StorageGB,
				"similarity", similarity)
			return &core.MatchResult{
				ListingA: a.listing,
				ListingB: b.listing,
				Tier:     core.TierColorStorage,
				Flags: core.MatchFlags{
					Color:   true,
					Storage: true,
				},
				NameSimilarity: similarity,
			}
		}
	}
	return nil
}

// colorOnlyFallback pairs the first listings with matching non-empty color
// and a name similarity of at least 60, ignoring storage.
func (m *Matcher) colorOnlyFallback(rankedA, rankedB []analyzedListing) *core.MatchResult {
	for _, a := range rankedA {
		for _, b := range rankedB {
			_, similarity := NameSimilarity(a.attrs.BaseName, b.attrs.BaseName)
			if similarity < fallbackL2Threshold {
				continue
			}
			if a.attrs.Color == "" || !strings.EqualFold(a.attrs.Color, b.attrs.Color) {
				continue
			}

			m.logger.Info("fallback matched on color only",
				"color", a.attrs.Color,
				"similarity", similarity)
			return &core.MatchResult{
				ListingA: a.listing,
				ListingB: b.listing,
				Tier:     core.TierColorOnly,
				Flags: core.MatchFlags{
					Color: true,
				},
				NameSimilarity: similarity,
				Warnings: []string{
					"storage capacity may differ between the matched listings; prices may not be directly comparable",
				},
			}
		}
	}
	return nil
}

// lastResort unconditionally pairs the top-ranked listing from each side and
// reports every attribute that may differ, so callers can flag the
// comparison as unreliable.
func (m *Matcher) lastResort(rankedA, rankedB []analyzedListing, rejections []core.Rejection) *core.MatchResult {
	a, b := rankedA[0], rankedB[0]
	_, similarity := NameSimilarity(a.attrs.BaseName, b.attrs.BaseName)

	warnings := []string{
		fmt.Sprintf("color may differ: %s vs %s", orEmpty(a.attrs.Color), orEmpty(b.attrs.Color)),
		fmt.Sprintf("storage may differ: %s vs %s", orEmpty(a.attrs.StorageGB), orEmpty(b.attrs.StorageGB)),
	}

	m.logger.Warn("no acceptable fallback pair, returning top-ranked listings",
		"title_a", a.listing.Title,
		"title_b", b.listing.Title,
		"similarity", similarity)
	return &core.MatchResult{
		ListingA:       a.listing,
		ListingB:       b.listing,
		Tier:           core.TierPartialMismatch,
		NameSimilarity: similarity,
		Warnings:       warnings,
		Rejections:     rejections,
	}
}
