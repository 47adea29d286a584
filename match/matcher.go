// Copyright 2026 Pricelens Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package match

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pricelens/pricelens/core"
	"github.com/pricelens/pricelens/extract"
)

// Score weights for the additive pair score. Name contributes its
// similarity percent divided by nameScoreDivisor, so a 100% name match is
// worth 20 points.
const (
	categoryScore    = 5
	brandScore       = 20
	storageScore     = 25
	colorScore       = 20
	sizeScore        = 10
	weightScore      = 10
	nameScoreDivisor = 5
)

// Similarity thresholds applied by the gated scan and tier assignment.
const (
	nameGateThreshold   = 70
	winnerSimThreshold  = 50
	excellentThreshold  = 80
	goodThreshold       = 70
	partialThreshold    = 60
	fallbackL1Threshold = 70
	fallbackL2Threshold = 60
)

// Matcher resolves two listing collections from different marketplaces
// down to the single pair most likely to describe the same product.
type Matcher struct {
	logger *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher) error

// WithLogger sets the logger used for gate diagnostics.
func WithLogger(logger *slog.Logger) MatcherOption {
	return func(m *Matcher) error {
		if logger == nil {
			return ErrNilLogger
		}
		m.logger = logger
		return nil
	}
}

// NewMatcher creates a Matcher with the given options.
func NewMatcher(opts ...MatcherOption) (*Matcher, error) {
	m := &Matcher{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// analyzedListing pairs a listing with the attributes extracted from its
// title, so the scan extracts each title exactly once.
type analyzedListing struct {
	listing *core.ListingRecord
	attrs   core.ExtractedAttributes
}

// analyze extracts attributes for each listing. Listings with a blank
// title are skipped individually; they cannot be matched and must not fail
// the surrounding collection.
func analyze(listings []*core.ListingRecord) []analyzedListing {
	analyzed := make([]analyzedListing, 0, len(listings))
	for _, listing := range listings {
		if strings.TrimSpace(listing.Title) == "" {
			continue
		}
		analyzed = append(analyzed, analyzedListing{
			listing: listing,
			attrs:   extract.Attributes(listing.Title),
		})
	}
	return analyzed
}

// Resolve finds the best cross-marketplace pair for the query. Both
// collections are ranked by query relevance first, then scanned through the
// rejection gates; if no pair survives with sufficient name similarity the
// fallback ladder produces a lower-confidence result. With two non-empty
// inputs Resolve always returns a pair; an empty input on either side
// yields a no_results tier with nil listings.
func (m *Matcher) Resolve(listingsA, listingsB []*core.ListingRecord, query string) *core.MatchResult {
	if len(listingsA) == 0 || len(listingsB) == 0 {
		m.logger.Info("no listings to match",
			"platform_a_count", len(listingsA),
			"platform_b_count", len(listingsB))
		return &core.MatchResult{Tier: core.TierNoResults}
	}

	rankedA := analyze(RankByRelevance(listingsA, query))
	rankedB := analyze(RankByRelevance(listingsB, query))
	if len(rankedA) == 0 || len(rankedB) == 0 {
		return &core.MatchResult{Tier: core.TierNoResults}
	}

	best, rejections := m.scanPairs(rankedA, rankedB)

	if best != nil && best.NameSimilarity >= winnerSimThreshold {
		result := &core.MatchResult{
			ListingA:       best.ListingA,
			ListingB:       best.ListingB,
			Tier:           assignTier(*best),
			Score:          best.Score,
			Flags:          best.Flags,
			NameSimilarity: best.NameSimilarity,
			Rejections:     rejections,
		}
		m.logger.Info("matched listing pair",
			"tier", result.Tier,
			"score", result.Score,
			"similarity", result.NameSimilarity)
		return result
	}

	return m.fallback(rankedA, rankedB, rejections)
}

// scanPairs runs every cross-platform pair through the gates and keeps the
// highest-scoring survivor. Ties keep the earliest pair, which is the most
// query-relevant one thanks to the pre-ranking.
func (m *Matcher) scanPairs(rankedA, rankedB []analyzedListing) (*core.MatchCandidate, []core.Rejection) {
	var best *core.MatchCandidate
	var rejections []core.Rejection

	for _, a := range rankedA {
		for _, b := range rankedB {
			candidate, rejection := m.evaluatePair(a, b)
			if rejection != nil {
				rejections = append(rejections, *rejection)
				m.logger.Debug("pair rejected",
					"gate", rejection.Gate,
					"reason", rejection.Reason)
				continue
			}
			if best == nil || candidate.Score > best.Score {
				best = candidate
			}
		}
	}
	return best, rejections
}

// evaluatePair applies the ordered gates to one pair. A nil rejection means
// the pair survived and the candidate carries its score and flags.
//
// Gate order matters: cheap categorical checks run before name similarity,
// and a rejection at any gate stops evaluation of the pair.
func (m *Matcher) evaluatePair(a, b analyzedListing) (*core.MatchCandidate, *core.Rejection) {
	reject := func(gate, reason string) (*core.MatchCandidate, *core.Rejection) {
		return nil, &core.Rejection{
			TitleA: a.listing.Title,
			TitleB: b.listing.Title,
			Gate:   gate,
			Reason: reason,
		}
	}

	var flags core.MatchFlags
	var score float64

	// Gate 1: category. Two listings in different known categories can
	// never be the same product; general is compatible with anything.
	catA, catB := a.attrs.Category, b.attrs.Category
	if catA != catB && catA != core.CategoryGeneral && catB != core.CategoryGeneral {
		return reject("category", string(catA)+" vs "+string(catB))
	}
	flags.Category = true
	score += categoryScore

	// Gate 2: brand. Equality is checked even when extraction found none on
	// a side: a brandless title against a branded one is rejected here, and
	// two brandless titles count as agreeing on brand.
	if !strings.EqualFold(a.attrs.Brand, b.attrs.Brand) {
		return reject("brand", orEmpty(a.attrs.Brand)+" vs "+orEmpty(b.attrs.Brand))
	}
	flags.Brand = true
	score += brandScore

	// Gate 3: name similarity.
	_, similarity := NameSimilarity(a.attrs.BaseName, b.attrs.BaseName)
	if similarity < nameGateThreshold {
		return reject("name", fmt.Sprintf("similarity %.0f%% below %d%%", similarity, nameGateThreshold))
	}
	flags.Name = true
	score += similarity / nameScoreDivisor

	// Gate 4: variant keywords on the base names.
	nameA := strings.ToLower(a.attrs.BaseName)
	nameB := strings.ToLower(b.attrs.BaseName)
	if reason := VariantMismatch(nameA, nameB); reason != "" {
		return reject("variant", reason)
	}

	// Gate 5: storage capacity, only when both sides extracted one.
	if a.attrs.StorageGB != "" && b.attrs.StorageGB != "" {
		if a.attrs.StorageGB != b.attrs.StorageGB {
			return reject("storage", a.attrs.StorageGB+"GB vs "+b.attrs.StorageGB+"GB")
		}
		flags.Storage = true
		score += storageScore
	}

	// Gate 6: color. Unlike brand and storage, asymmetric presence rejects:
	// a colorless title against a colored one usually hides a variant
	// difference.
	colorA, colorB := a.attrs.Color, b.attrs.Color
	switch {
	case colorA != "" && colorB != "":
		if !strings.EqualFold(strings.TrimSpace(colorA), strings.TrimSpace(colorB)) {
			return reject("color", colorA+" vs "+colorB)
		}
		flags.Color = true
		score += colorScore
	case colorA != "" || colorB != "":
		return reject("color", "color present on one side only: "+orEmpty(colorA)+" vs "+orEmpty(colorB))
	}

	// Gates 7 and 8 are soft: a mismatch earns no points but does not
	// reject, because size and weight extraction is the least reliable.
	if a.attrs.Size != "" && b.attrs.Size != "" {
		sizeA, errA := strconv.ParseFloat(a.attrs.Size, 64)
		sizeB, errB := strconv.ParseFloat(b.attrs.Size, 64)
		if errA == nil && errB == nil && math.Abs(sizeA-sizeB) < 0.01 {
			flags.Size = true
			score += sizeScore
		}
	}

	if a.attrs.Weight != "" && b.attrs.Weight != "" && weightsMatch(a.attrs.Weight, b.attrs.Weight) {
		flags.Weight = true
		score += weightScore
	}

	return &core.MatchCandidate{
		ListingA:       a.listing,
		ListingB:       b.listing,
		Score:          score,
		Flags:          flags,
		NameSimilarity: similarity,
	}, nil
}

// assignTier maps a surviving candidate to its confidence tier using the
// number of criteria met (brand, storage, color, size) and the name
// similarity percent. Storage plus color together pin the exact retail
// variant, which is why that combination outranks any criteria count.
func assignTier(c core.MatchCandidate) core.Tier {
	criteria := c.Flags.CriteriaMet()

	switch {
	case c.Flags.Storage && c.Flags.Color:
		return core.TierPerfect
	case criteria >= 3 && c.NameSimilarity >= excellentThreshold:
		return core.TierExcellent
	case criteria >= 2 && c.NameSimilarity >= goodThreshold:
		return core.TierGood
	case criteria >= 1 && c.NameSimilarity >= partialThreshold:
		return core.TierPartial
	default:
		return core.TierWeak
	}
}

var weightRe = regexp.MustCompile(`(\d+\.?\d*)\s*([a-z]+)`)

var weightUnitAliases = map[string]string{
	"g": "g", "gm": "g", "gram": "g", "grams": "g",
	"kg": "kg", "kgs": "kg",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"ml": "ml", "l": "l", "litre": "l", "liter": "l",
}

// weightsMatch compares two weight strings numerically when both parse,
// and falls back to normalized string equality when either does not.
func weightsMatch(a, b string) bool {
	valA, unitA, okA := parseWeight(a)
	valB, unitB, okB := parseWeight(b)
	if okA && okB {
		return unitA == unitB && math.Abs(valA-valB) < 0.01
	}
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func parseWeight(s string) (float64, string, bool) {
	groups := weightRe.FindStringSubmatch(strings.ToLower(s))
	if groups == nil {
		return 0, "", false
	}
	val, err := strconv.ParseFloat(groups[1], 64)
	if err != nil {
		return 0, "", false
	}
	unit, ok := weightUnitAliases[groups[2]]
	if !ok {
		return 0, "", false
	}
	return val, unit, true
}

func orEmpty(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
