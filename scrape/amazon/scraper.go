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

package amazon

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/pricelens/pricelens/core"
	"github.com/pricelens/pricelens/scrape"
)

const searchURL = "https://www.amazon.in/s"

// Scraper extracts product listings from Amazon search result pages.
type Scraper struct {
	cfg    scrape.Config
	logger *slog.Logger
}

// New creates an Amazon scraper with the given configuration.
func New(cfg scrape.Config) *Scraper {
	return &Scraper{
		cfg:    cfg,
		logger: slog.Default().With("component", "amazon-scraper"),
	}
}

// Platform returns core.PlatformAmazon.
func (s *Scraper) Platform() core.Platform {
	return core.PlatformAmazon
}

// card mirrors the fields the in-page extraction script returns.
type card struct {
	Title   string `json:"title"`
	Price   string `json:"price"`
	Rating  string `json:"rating"`
	Reviews string `json:"reviews"`
	URL     string `json:"url"`
}

// Search loads the Amazon search page for the query and extracts up to
// limit result cards. Failed page loads are retried with backoff; only
// exhausting the retries returns an error.
func (s *Scraper) Search(ctx context.Context, query string, limit int) ([]*core.ListingRecord, error) {
	if strings.TrimSpace(query) == "" {
		return nil, scrape.ErrEmptyQuery
	}

	pageURL := searchURL + "?k=" + url.QueryEscape(query)
	s.logger.Info("searching amazon", "query", query, "limit", limit)

	allocCtx, cancelAlloc := scrape.NewAllocator(ctx, s.cfg)
	defer cancelAlloc()

	var cards []card
	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		cards, lastErr = s.loadPage(allocCtx, pageURL, limit)
		if lastErr == nil {
			break
		}
		s.logger.Warn("amazon page load failed",
			"attempt", attempt, "err", lastErr)
		time.Sleep(time.Duration(attempt) * 2 * time.Second)
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %w", scrape.ErrPageLoad, lastErr)
	}

	listings := make([]*core.ListingRecord, 0, len(cards))
	for _, c := range cards {
		if c.Title == "" || c.URL == "" {
			continue
		}
		listings = append(listings, &core.ListingRecord{
			Id:          core.IDFromContent(c.URL),
			Platform:    core.PlatformAmazon,
			Title:       c.Title,
			Price:       scrape.CleanPrice(c.Price),
			Rating:      scrape.CleanRating(c.Rating),
			ReviewCount: scrape.CleanReviews(c.Reviews),
			URL:         c.URL,
		})
	}

	s.logger.Info("amazon search complete", "listings", len(listings))
	return listings, nil
}

func (s *Scraper) loadPage(allocCtx context.Context, pageURL string, limit int) ([]card, error) {
	ctx, cancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, s.cfg.PageTimeout)
	defer cancelTimeout()

	var cards []card
	err := chromedp.Run(ctx,
		chromedp.Navigate(pageURL),
		chromedp.Sleep(4*time.Second),
		chromedp.Evaluate(`
			(function() {
				var limit = `+fmt.Sprintf("%d", limit)+`;
				var results = [];
				var containers = document.querySelectorAll('div[data-component-type="s-search-result"]');
				if (containers.length === 0) {
					containers = document.querySelectorAll('div.s-result-item');
				}

				for (var i = 0; i < containers.length && results.length < limit; i++) {
					var c = containers[i];

					var titleEl = c.querySelector('h2 a span') || c.querySelector('h2 span');
					var title = titleEl ? titleEl.innerText.trim() : '';

					var priceEl = c.querySelector('.a-price .a-offscreen') ||
					              c.querySelector('.a-price-whole');
					var price = priceEl ? priceEl.innerText.trim() : '';

					var ratingEl = c.querySelector('.a-icon-alt');
					var rating = ratingEl ? ratingEl.innerText.trim() : '';

					var reviewsEl = c.querySelector('span[aria-label$="ratings"]') ||
					                c.querySelector('.s-underline-text');
					var reviews = reviewsEl ? reviewsEl.innerText.trim() : '';

					var linkEl = c.querySelector('h2 a') || c.querySelector('a.a-link-normal');
					var href = linkEl ? linkEl.href : '';

					if (!title || !href) continue;
					results.push({
						title: title,
						price: price,
						rating: rating,
						reviews: reviews,
						url: href
					});
				}
				return results;
			})()
		`, &cards),
	)
	return cards, err
}
