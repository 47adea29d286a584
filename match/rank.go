package match

import (
	"slices"
	"strings"

	"github.com/pricelens/pricelens/core"
)

// RankByRelevance returns the listings sorted by query relevance,
// descending. Relevance is the fraction of query tokens found in the
// listing title, case-insensitive. The sort is stable, so equally relevant
// listings keep their scrape order. When the query is empty all listings
// rank equally and the input order is preserved.
func RankByRelevance(listings []*core.ListingRecord, query string) []*core.ListingRecord {
	ranked := slices.Clone(listings)

	queryTokens := tokenSet(query)
	if len(queryTokens) == 0 {
		return ranked
	}

	relevance := make(map[*core.ListingRecord]float64, len(ranked))
	for _, listing := range ranked {
		titleTokens := tokenSet(listing.Title)
		matching := 0
		for token := range queryTokens {
			if titleTokens[token] {
				matching++
			}
		}
		relevance[listing] = float64(matching) / float64(len(queryTokens)) * 100
	}

	slices.SortStableFunc(ranked, func(a, b *core.ListingRecord) int {
		switch {
		case relevance[a] > relevance[b]:
			return -1
		case relevance[a] < relevance[b]:
			return 1
		}
		return 0
	})
	return ranked
}

func tokenSet(s string) map[string]bool {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
