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

package compare

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/pricelens/pricelens/core"
	"github.com/pricelens/pricelens/match"
	"github.com/pricelens/pricelens/scrape"
	"github.com/pricelens/pricelens/semantic"
	"github.com/pricelens/pricelens/storage"
)

const (
	// defaultPoolSize covers one worker per marketplace scrape.
	defaultPoolSize = 2

	// defaultSearchLimit is how many listings each scraper is asked for.
	defaultSearchLimit = 20

	// disambiguationLimit caps the per-platform candidates surfaced when
	// the match confidence is too low to pick a winner outright.
	disambiguationLimit = 10
)

// Comparison is the end-to-end outcome for one query: the resolved match,
// the buy recommendation when a pair was found, and the candidate listings
// surfaced for manual disambiguation when confidence was low.
type Comparison struct {
	Query          string
	Match          *core.MatchResult
	Recommendation *Recommendation
	Disambiguation *Disambiguation
	FilteredA      []*core.ListingRecord
	FilteredB      []*core.ListingRecord
	ScrapedA       int
	ScrapedB       int
	Elapsed        time.Duration
}

// Disambiguation carries the top candidates from each marketplace, query
// relevance first, for the user to resolve by hand.
type Disambiguation struct {
	PlatformA core.Platform
	PlatformB core.Platform
	TopA      []*core.ListingRecord
	TopB      []*core.ListingRecord
}

// Pipeline orchestrates a full comparison: scrape both marketplaces
// concurrently, persist what was scraped, narrow each side with the
// semantic filter, resolve the best pair and weigh it into a
// recommendation.
type Pipeline struct {
	scraperA scrape.Scraper
	scraperB scrape.Scraper
	filter   *semantic.Filter
	matcher  *match.Matcher
	listings storage.ListingRepository

	pool        *ants.Pool
	poolSize    int
	searchLimit int
	filterOpts  semantic.FilterOptions
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets the logger used for pipeline progress.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			return ErrNilLogger
		}
		p.logger = logger
		return nil
	}
}

// WithPoolSize sets the size of the worker pool running the scrapes.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size <= 0 {
			return ErrInvalidPoolSize
		}
		p.poolSize = size
		return nil
	}
}

// WithSearchLimit sets how many listings each marketplace is asked for.
func WithSearchLimit(limit int) Option {
	return func(p *Pipeline) error {
		if limit <= 0 {
			return ErrInvalidSearchLimit
		}
		p.searchLimit = limit
		return nil
	}
}

// WithListingRepository enables persistence of every scraped listing.
// Without it the pipeline compares in memory only.
func WithListingRepository(repo storage.ListingRepository) Option {
	return func(p *Pipeline) error {
		if repo == nil {
			return ErrNilRepository
		}
		p.listings = repo
		return nil
	}
}

// WithFilterOptions overrides the semantic filter settings.
func WithFilterOptions(opts semantic.FilterOptions) Option {
	return func(p *Pipeline) error {
		p.filterOpts = opts
		return nil
	}
}

// NewPipeline creates a Pipeline over two marketplace scrapers.
func NewPipeline(scraperA, scraperB scrape.Scraper, filter *semantic.Filter, matcher *match.Matcher, opts ...Option) (*Pipeline, error) {
	if scraperA == nil || scraperB == nil {
		return nil, ErrNilScraper
	}
	if filter == nil {
		return nil, ErrNilFilter
	}
	if matcher == nil {
		return nil, ErrNilMatcher
	}

	p := &Pipeline{
		scraperA:    scraperA,
		scraperB:    scraperB,
		filter:      filter,
		matcher:     matcher,
		poolSize:    defaultPoolSize,
		searchLimit: defaultSearchLimit,
		filterOpts:  semantic.DefaultFilterOptions(),
		logger:      slog.Default().With("component", "compare-pipeline"),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	pool, err := ants.NewPool(p.poolSize)
	if err != nil {
		return nil, err
	}
	p.pool = pool
	return p, nil
}

// Close releases the worker pool.
func (p *Pipeline) Close() error {
	p.pool.Release()
	return nil
}

// Compare runs the full pipeline for one query. A scrape failure on a
// single marketplace is tolerated: the failed side is treated as empty and
// the matcher reports no_results through the usual path. Only when both
// scrapes fail does Compare return an error.
func (p *Pipeline) Compare(ctx context.Context, query string) (*Comparison, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	started := time.Now()

	p.logger.Info("comparison started",
		"query", query,
		"platform_a", p.scraperA.Platform(),
		"platform_b", p.scraperB.Platform())

	scrapedA, scrapedB, err := p.scrapeBoth(ctx, query)
	if err != nil {
		return nil, err
	}

	p.persist(ctx, scrapedA)
	p.persist(ctx, scrapedB)

	filteredA, err := p.filter.Filter(ctx, query, scrapedA, p.filterOpts)
	if err != nil {
		return nil, err
	}
	filteredB, err := p.filter.Filter(ctx, query, scrapedB, p.filterOpts)
	if err != nil {
		return nil, err
	}

	result := p.matcher.Resolve(filteredA, filteredB, query)

	comparison := &Comparison{
		Query:     query,
		Match:     result,
		FilteredA: filteredA,
		FilteredB: filteredB,
		ScrapedA:  len(scrapedA),
		ScrapedB:  len(scrapedB),
		Elapsed:   time.Since(started),
	}

	if result.Tier.Matched() && result.ListingA != nil && result.ListingB != nil {
		comparison.Recommendation = Recommend(result.ListingA, result.ListingB)
	}
	if !result.Tier.Matched() || result.Tier.Fallback() {
		comparison.Disambiguation = p.disambiguate(query, filteredA, filteredB, scrapedA, scrapedB)
	}

	p.logger.Info("comparison finished",
		"query", query,
		"tier", result.Tier,
		"elapsed", comparison.Elapsed)
	return comparison, nil
}

// scrapeBoth runs both marketplace scrapes concurrently on the worker pool.
func (p *Pipeline) scrapeBoth(ctx context.Context, query string) ([]*core.ListingRecord, []*core.ListingRecord, error) {
	var (
		wg               sync.WaitGroup
		resultA, resultB []*core.ListingRecord
		errA, errB       error
	)

	wg.Add(2)
	p.submit(func() {
		defer wg.Done()
		resultA, errA = p.scraperA.Search(ctx, query, p.searchLimit)
	})
	p.submit(func() {
		defer wg.Done()
		resultB, errB = p.scraperB.Search(ctx, query, p.searchLimit)
	})
	wg.Wait()

	if errA != nil && errB != nil {
		p.logger.Error("both scrapes failed", "err_a", errA, "err_b", errB)
		return nil, nil, ErrScrapeFailed
	}
	if errA != nil {
		p.logger.Warn("scrape failed, continuing with one side",
			"platform", p.scraperA.Platform(), "err", errA)
	}
	if errB != nil {
		p.logger.Warn("scrape failed, continuing with one side",
			"platform", p.scraperB.Platform(), "err", errB)
	}

	p.logger.Info("scraping complete",
		"platform_a_count", len(resultA), "platform_b_count", len(resultB))
	return resultA, resultB, nil
}

// submit schedules the task on the pool, falling back to running it inline
// when the pool refuses it. The WaitGroup accounting must complete either
// way.
func (p *Pipeline) submit(task func()) {
	if err := p.pool.Submit(task); err != nil {
		p.logger.Warn("pool submission failed, running inline", "err", err)
		task()
	}
}

// persist upserts scraped listings when a repository is configured.
// Storage trouble is logged, not fatal: a comparison is still useful when
// the cache write fails.
func (p *Pipeline) persist(ctx context.Context, records []*core.ListingRecord) {
	if p.listings == nil || len(records) == 0 {
		return
	}
	if _, err := p.listings.UpsertListings(ctx, records...); err != nil {
		p.logger.Warn("failed to persist listings", "err", err)
	}
}

// disambiguate assembles the top candidates from each side. The filtered
// sets are preferred; when a side was filtered down to nothing the raw
// scrape is shown instead, so the user still sees what was found.
func (p *Pipeline) disambiguate(query string, filteredA, filteredB, scrapedA, scrapedB []*core.ListingRecord) *Disambiguation {
	candidatesA := filteredA
	if len(candidatesA) == 0 {
		candidatesA = scrapedA
	}
	candidatesB := filteredB
	if len(candidatesB) == 0 {
		candidatesB = scrapedB
	}

	return &Disambiguation{
		PlatformA: p.scraperA.Platform(),
		PlatformB: p.scraperB.Platform(),
		TopA:      topRelevant(candidatesA, query),
		TopB:      topRelevant(candidatesB, query),
	}
}

func topRelevant(listings []*core.ListingRecord, query string) []*core.ListingRecord {
	ranked := match.RankByRelevance(listings, query)
	if len(ranked) > disambiguationLimit {
		ranked = ranked[:disambiguationLimit]
	}
	return ranked
}
