package flipkart

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

const searchURL = "https://www.flipkart.com/search"

// Scraper extracts product listings from Flipkart search result pages.
// Flipkart's markup is heavily obfuscated and changes often, so extraction
// anchors on product-page links (href containing "/p/") rather than class
// names, walking up from each link to find its card.
type Scraper struct {
	cfg    scrape.Config
	logger *slog.Logger
}

// New creates a Flipkart scraper with the given configuration.
func New(cfg scrape.Config) *Scraper {
	return &Scraper{
		cfg:    cfg,
		logger: slog.Default().With("component", "flipkart-scraper"),
	}
}

// Platform returns core.PlatformFlipkart.
func (s *Scraper) Platform() core.Platform {
	return core.PlatformFlipkart
}

type card struct {
	Title   string `json:"title"`
	Price   string `json:"price"`
	Rating  string `json:"rating"`
	Reviews string `json:"reviews"`
	URL     string `json:"url"`
}

// Search loads the Flipkart search page for the query and extracts up to
// limit result cards. Failed page loads are retried with backoff.
func (s *Scraper) Search(ctx context.Context, query string, limit int) ([]*core.ListingRecord, error) {
	if strings.TrimSpace(query) == "" {
		return nil, scrape.ErrEmptyQuery
	}

	pageURL := searchURL + "?q=" + url.QueryEscape(query)
	s.logger.Info("searching flipkart", "query", query, "limit", limit)

	allocCtx, cancelAlloc := scrape.NewAllocator(ctx, s.cfg)
	defer cancelAlloc()

	var cards []card
	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		cards, lastErr = s.loadPage(allocCtx, pageURL, limit)
		if lastErr == nil {
			break
		}
		s.logger.Warn("flipkart page load failed",
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
			Platform:    core.PlatformFlipkart,
			Title:       c.Title,
			Price:       scrape.CleanPrice(c.Price),
			Rating:      scrape.CleanRating(c.Rating),
			ReviewCount: scrape.CleanReviews(c.Reviews),
			URL:         c.URL,
		})
	}

	s.logger.Info("flipkart search complete", "listings", len(listings))
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
				var seen = {};

				var links = document.querySelectorAll('a[href*="/p/"]');
				for (var i = 0; i < links.length && results.length < limit; i++) {
					var link = links[i];
					var href = link.href;
					if (!href || seen[href]) continue;

					// Walk up to the card container that holds the price.
					var cardDiv = link;
					for (var up = 0; up < 5 && cardDiv; up++) {
						if (cardDiv.innerText && cardDiv.innerText.match(/₹[\d,]+/)) break;
						cardDiv = cardDiv.parentElement;
					}
					if (!cardDiv) continue;

					var text = cardDiv.innerText || '';
					if (text.length > 2000) continue;

					var title = link.innerText.trim();
					if (!title) {
						var img = link.querySelector('img[alt]');
						title = img ? img.alt.trim() : '';
					}

					var priceMatch = text.match(/₹[\d,]+/);
					var price = priceMatch ? priceMatch[0] : '';

					var ratingMatch = text.match(/(\d\.\d)(?=\s|★|$)/);
					var rating = ratingMatch ? ratingMatch[1] : '';

					var reviewsMatch = text.match(/([\d,\.]+K?)\s*(Ratings|Reviews)/i);
					var reviews = reviewsMatch ? reviewsMatch[1] : '';

					if (!title || !price) continue;
					seen[href] = true;
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
