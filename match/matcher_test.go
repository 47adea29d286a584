package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricelens/pricelens/core"
)

func flipkartListing(title string) *core.ListingRecord {
	return &core.ListingRecord{
		Id:       core.IDFromContent(title),
		Platform: core.PlatformFlipkart,
		Title:    title,
	}
}

func TestNewMatcher_NilLogger(t *testing.T) {
	_, err := NewMatcher(WithLogger(nil))
	require.ErrorIs(t, err, ErrNilLogger)
}

func TestMatcher_ResolveEmptyInput(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	result := m.Resolve(nil, []*core.ListingRecord{flipkartListing("Apple iPhone 17 Pro")}, "iphone")

	assert.Equal(t, core.TierNoResults, result.Tier)
	assert.Nil(t, result.ListingA)
	assert.Nil(t, result.ListingB)
	assert.False(t, result.Tier.Matched())
}

func TestMatcher_ResolveSkipsBlankTitles(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	result := m.Resolve(
		[]*core.ListingRecord{listing("   ")},
		[]*core.ListingRecord{flipkartListing("Apple iPhone 17 Pro")},
		"iphone",
	)

	assert.Equal(t, core.TierNoResults, result.Tier)
}

func TestMatcher_ResolvePerfectTier(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	amazon := []*core.ListingRecord{
		listing("Apple iPhone 17 Pro (Cosmic Orange, 256 GB)"),
	}
	flipkart := []*core.ListingRecord{
		flipkartListing("Apple iPhone 17 Pro (Deep Blue, 256 GB)"),
		flipkartListing("Apple iPhone 17 Pro (Cosmic Orange, 256 GB)"),
	}

	result := m.Resolve(amazon, flipkart, "iPhone 17 Pro")

	require.Equal(t, core.TierPerfect, result.Tier)
	require.NotNil(t, result.ListingB)
	assert.Equal(t, "Apple iPhone 17 Pro (Cosmic Orange, 256 GB)", result.ListingB.Title)
	assert.True(t, result.Flags.Storage)
	assert.True(t, result.Flags.Color)
	assert.True(t, result.Flags.Brand)
	assert.False(t, result.Tier.Fallback())

	// The Deep Blue candidate must have been rejected at the color gate and
	// recorded as a diagnostic, not an error.
	require.Len(t, result.Rejections, 1)
	assert.Equal(t, "color", result.Rejections[0].Gate)
}

func TestMatcher_StorageMismatchFallsBackToColorOnly(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	amazon := []*core.ListingRecord{
		listing("Apple iPhone 17 Pro (Deep Blue, 256 GB)"),
	}
	flipkart := []*core.ListingRecord{
		flipkartListing("Apple iPhone 17 Pro (Deep Blue, 512 GB)"),
	}

	result := m.Resolve(amazon, flipkart, "iPhone 17 Pro")

	assert.Equal(t, core.TierColorOnly, result.Tier)
	assert.True(t, result.Tier.Fallback())
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "storage capacity may differ")
}

func TestMatcher_AsymmetricColorHitsLastResort(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	// One side carries a color token, the other none. The titles must stay
	// hyphen-free: a hyphenated model number would trigger the dash-suffix
	// color strategy on both sides and turn this into a plain mismatch.
	amazon := []*core.ListingRecord{
		listing("Sony Wireless Headphones Black"),
	}
	flipkart := []*core.ListingRecord{
		flipkartListing("Sony Wireless Headphones"),
	}

	result := m.Resolve(amazon, flipkart, "sony wireless headphones")

	require.Equal(t, core.TierPartialMismatch, result.Tier)
	require.NotNil(t, result.ListingA)
	require.NotNil(t, result.ListingB)
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "color may differ")
	assert.Contains(t, result.Warnings[1], "storage may differ")

	// The primary rejection is the asymmetric-presence branch of the color
	// gate, and since color is not present on both sides the first two
	// fallback levels cannot fire either.
	require.NotEmpty(t, result.Rejections)
	assert.Equal(t, "color", result.Rejections[0].Gate)
	assert.Contains(t, result.Rejections[0].Reason, "one side only")
}

func TestMatcher_BrandMismatchRejects(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	amazon := []*core.ListingRecord{
		listing("Samsung Galaxy Buds Wireless Earbuds"),
	}
	flipkart := []*core.ListingRecord{
		flipkartListing("Sony Galaxy Buds Wireless Earbuds"),
	}

	result := m.Resolve(amazon, flipkart, "galaxy buds")

	// Primary path rejects on brand; no colors anywhere, so the ladder
	// bottoms out at the last resort.
	assert.Equal(t, core.TierPartialMismatch, result.Tier)

	var gates []string
	for _, r := range result.Rejections {
		gates = append(gates, r.Gate)
	}
	assert.Contains(t, gates, "brand")
}

func TestMatcher_BrandGateAppliesWhenMissingOnOneSide(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	// Every token of the first title is two characters or shorter, so no
	// brand is extracted. The gate still compares, and empty-vs-Apple
	// rejects at the brand gate, not at the name gate.
	amazon := []*core.ListingRecord{
		listing("LG G8 X"),
	}
	flipkart := []*core.ListingRecord{
		flipkartListing("Apple iPhone 17 Pro"),
	}

	result := m.Resolve(amazon, flipkart, "phone")

	require.NotEmpty(t, result.Rejections)
	assert.Equal(t, "brand", result.Rejections[0].Gate)
	assert.Contains(t, result.Rejections[0].Reason, "none vs Apple")
}

func TestEvaluatePair_BrandAgreementWhenBothMissing(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	mk := func(title string) analyzedListing {
		return analyzedListing{
			listing: listing(title),
			attrs: core.ExtractedAttributes{
				BaseName: title,
				Category: core.CategoryGeneral,
			},
		}
	}

	candidate, rejection := m.evaluatePair(
		mk("ceramic mixing bowl set"),
		mk("ceramic mixing bowl set"),
	)

	require.Nil(t, rejection)
	assert.True(t, candidate.Flags.Brand, "two brandless titles agree on brand")
	assert.Equal(t, float64(categoryScore+brandScore)+100.0/nameScoreDivisor, candidate.Score)
}

func TestMatcher_CategoryGateBlocksAccessories(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	amazon := []*core.ListingRecord{
		listing("Apple iPhone 17 Pro Smartphone (Deep Blue, 256 GB)"),
	}
	flipkart := []*core.ListingRecord{
		flipkartListing("Back Cover Case for Apple iPhone 17 Pro (Deep Blue)"),
	}

	result := m.Resolve(amazon, flipkart, "iPhone 17 Pro")

	assert.NotEqual(t, core.TierPerfect, result.Tier)

	var gates []string
	for _, r := range result.Rejections {
		gates = append(gates, r.Gate)
	}
	assert.Contains(t, gates, "category")
}

func TestAssignTier(t *testing.T) {
	tests := []struct {
		name      string
		candidate core.MatchCandidate
		want      core.Tier
	}{
		{
			name: "storage plus color is perfect regardless of count",
			candidate: core.MatchCandidate{
				Flags:          core.MatchFlags{Storage: true, Color: true},
				NameSimilarity: 72,
			},
			want: core.TierPerfect,
		},
		{
			name: "three criteria with high similarity",
			candidate: core.MatchCandidate{
				Flags:          core.MatchFlags{Brand: true, Storage: true, Size: true},
				NameSimilarity: 85,
			},
			want: core.TierExcellent,
		},
		{
			name: "two criteria with decent similarity",
			candidate: core.MatchCandidate{
				Flags:          core.MatchFlags{Brand: true, Size: true},
				NameSimilarity: 72,
			},
			want: core.TierGood,
		},
		{
			name: "one criterion",
			candidate: core.MatchCandidate{
				Flags:          core.MatchFlags{Brand: true},
				NameSimilarity: 65,
			},
			want: core.TierPartial,
		},
		{
			name: "nothing but name overlap",
			candidate: core.MatchCandidate{
				NameSimilarity: 55,
			},
			want: core.TierWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assignTier(tt.candidate))
		})
	}
}

func TestWeightsMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"50g", "50 g", true},
		{"50g", "50 grams", true},
		{"50g", "60g", false},
		{"50g", "50ml", false},
		{"1.7 oz", "1.7 ounce", true},
		{"handful", "handful", true}, // unparseable falls back to string equality
		{"handful", "pinch", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, weightsMatch(tt.a, tt.b))
		})
	}
}
