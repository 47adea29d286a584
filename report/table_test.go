package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pricelens/pricelens/compare"
	"github.com/pricelens/pricelens/core"
)

func sampleComparison() *compare.Comparison {
	a := &core.ListingRecord{
		Platform:    core.PlatformAmazon,
		Title:       "Apple iPhone 17 Pro (256 GB) - Cosmic Orange",
		Price:       134900,
		Rating:      4.6,
		ReviewCount: 1250,
		Similarity:  0.9312,
	}
	b := &core.ListingRecord{
		Platform:    core.PlatformFlipkart,
		Title:       "Apple iPhone 17 Pro 256 GB Cosmic Orange",
		Price:       129900,
		Rating:      4.5,
		ReviewCount: 2100,
		Similarity:  0.9458,
	}
	return &compare.Comparison{
		Query: "iPhone 17 Pro Cosmic Orange",
		Match: &core.MatchResult{
			ListingA:       a,
			ListingB:       b,
			Tier:           core.TierPerfect,
			Score:          100,
			NameSimilarity: 100,
		},
		Recommendation: compare.Recommend(a, b),
	}
}

func TestRenderComparison(t *testing.T) {
	out := RenderComparison(sampleComparison())

	assert.Contains(t, out, "iPhone 17 Pro Cosmic Orange")
	assert.Contains(t, out, string(core.TierPerfect))
	assert.Contains(t, out, "amazon")
	assert.Contains(t, out, "flipkart")
	assert.Contains(t, out, "₹134900.00")
	assert.Contains(t, out, "Recommendation: buy on flipkart")
}

func TestRenderComparison_Warnings(t *testing.T) {
	c := sampleComparison()
	c.Match.Tier = core.TierColorOnly
	c.Match.Warnings = []string{"storage capacity may differ"}

	out := RenderComparison(c)
	assert.Contains(t, out, "Warning: storage capacity may differ")
}

func TestRenderComparison_Disambiguation(t *testing.T) {
	c := sampleComparison()
	c.Match.Tier = core.TierNoMatch
	c.Match.ListingA = nil
	c.Match.ListingB = nil
	c.Recommendation = nil
	c.Disambiguation = &compare.Disambiguation{
		PlatformA: core.PlatformAmazon,
		PlatformB: core.PlatformFlipkart,
		TopA: []*core.ListingRecord{
			{Platform: core.PlatformAmazon, Title: "Candidate A", Price: 100},
		},
		TopB: []*core.ListingRecord{
			{Platform: core.PlatformFlipkart, Title: "Candidate B", Price: 120},
		},
	}

	out := RenderComparison(c)
	assert.Contains(t, out, "top candidates per platform")
	assert.Contains(t, out, "Candidate A")
	assert.Contains(t, out, "Candidate B")
}

func TestRenderListings(t *testing.T) {
	records := []*core.ListingRecord{
		{Platform: core.PlatformAmazon, Title: "Thing", Price: 0, Rating: 0},
	}

	out := RenderListings(records)
	assert.Contains(t, out, "Thing")
	// Unknown price and rating render as dashes, not zeros.
	assert.NotContains(t, out, "₹0.00")

	assert.Equal(t, "no listings\n", RenderListings(nil))
}

func TestRenderListingsCSV(t *testing.T) {
	records := []*core.ListingRecord{
		{Platform: core.PlatformAmazon, Title: "Thing One", Price: 999.5, ReviewCount: 12},
		{Platform: core.PlatformFlipkart, Title: "Thing Two", Price: 899, ReviewCount: 40},
	}

	out := RenderListingsCSV(records)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3, "header plus one line per record")
	assert.Contains(t, lines[0], "Platform")
	assert.Contains(t, out, "Thing One")
	assert.Contains(t, out, "Thing Two")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("x", 80)
	got := truncate(long, 60)
	assert.Equal(t, 60, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}
