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

package semantic

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/pricelens/pricelens/ai"
	"github.com/pricelens/pricelens/core"
)

// DefaultThreshold is the similarity cut applied when the caller does not
// specify one.
const DefaultThreshold = 0.80

// FilterOptions control a single filtering pass.
type FilterOptions struct {
	// Threshold is the minimum cosine similarity in [0, 1] a listing must
	// reach against the query to be kept.
	Threshold float64

	// ExcludeAccessories drops listings whose title matches the accessory
	// denylist before any embedding work.
	ExcludeAccessories bool

	// MaxResults truncates the sorted result when positive. Zero means no
	// limit.
	MaxResults int
}

// DefaultFilterOptions returns the options used by the standard pipeline.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		Threshold:          DefaultThreshold,
		ExcludeAccessories: true,
	}
}

// Filter scores scraped listings against the user query with embedding
// similarity and keeps the ones close enough to plausibly be the queried
// product. It is safe for concurrent use; all state lives in the embedder.
type Filter struct {
	embedder ai.Embedder
	logger   *slog.Logger
}

// FilterOption configures a Filter.
type FilterOption func(*Filter) error

// WithLogger sets the logger used for filtering diagnostics.
func WithLogger(logger *slog.Logger) FilterOption {
	return func(f *Filter) error {
		if logger == nil {
			return ErrNilLogger
		}
		f.logger = logger
		return nil
	}
}

// NewFilter creates a Filter backed by the given embedder.
func NewFilter(embedder ai.Embedder, opts ...FilterOption) (*Filter, error) {
	if embedder == nil {
		return nil, ErrNilEmbedder
	}

	f := &Filter{
		embedder: embedder,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Filter returns the listings whose title similarity against the query
// meets the threshold, sorted by similarity descending, with the rounded
// score attached to each returned record. Input records are not mutated.
//
// Argument validation happens before any embedding work, so a bad threshold
// never costs a model call. An empty listing slice is an empty result, not
// an error. A listing that individually fails to embed is logged and
// skipped; only a failure to embed the query itself aborts the call.
func (f *Filter) Filter(ctx context.Context, query string, listings []*core.ListingRecord, opts FilterOptions) ([]*core.ListingRecord, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return nil, ErrInvalidThreshold
	}
	if len(listings) == 0 {
		f.logger.Warn("no listings provided to filter")
		return []*core.ListingRecord{}, nil
	}

	f.logger.Info("filtering listings", "query", query, "count", len(listings))

	queryVec, err := f.embedder.EmbedText(ctx, normalizeText(query))
	if err != nil {
		return nil, err
	}

	matched := make([]*core.ListingRecord, 0, len(listings))
	excluded := 0

	for _, listing := range listings {
		if strings.TrimSpace(listing.Title) == "" {
			f.logger.Warn("listing missing title, skipping", "url", listing.URL)
			continue
		}

		if opts.ExcludeAccessories && IsExcluded(listing.Title) {
			excluded++
			f.logger.Debug("excluded by denylist", "title", listing.Title)
			continue
		}

		titleVec, err := f.embedder.EmbedText(ctx, normalizeText(listing.Title))
		if err != nil {
			f.logger.Warn("failed to embed listing title, skipping",
				"title", listing.Title, "err", err)
			continue
		}

		similarity, err := CosineSimilarity(queryVec, titleVec)
		if err != nil {
			f.logger.Warn("similarity computation failed, skipping",
				"title", listing.Title, "err", err)
			continue
		}

		if similarity < opts.Threshold {
			f.logger.Debug("below threshold",
				"title", listing.Title, "similarity", similarity)
			continue
		}

		kept := *listing
		kept.Similarity = math.Round(similarity*10000) / 10000
		matched = append(matched, &kept)
	}

	slices.SortStableFunc(matched, func(a, b *core.ListingRecord) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		}
		return 0
	})

	if opts.MaxResults > 0 && len(matched) > opts.MaxResults {
		matched = matched[:opts.MaxResults]
	}

	f.logger.Info("filtering complete",
		"matches", len(matched),
		"threshold", opts.Threshold,
		"excluded", excluded)
	return matched, nil
}

// normalizeText lowercases and trims text before embedding so that casing
// differences between marketplaces do not shift similarity scores.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
