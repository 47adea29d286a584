package scrape

import (
	"context"
	"time"

	"github.com/pricelens/pricelens/core"
)

// Scraper fetches raw product listings for a search query from one
// marketplace. Implementations own their transport (browser automation,
// HTTP) along with its timeouts and retries; callers receive records whose
// price, rating and review count have already been cleaned.
type Scraper interface {
	// Search returns up to limit listings for the query, most relevant
	// first as presented by the marketplace. An empty result is not an
	// error; transport failures after all retries are.
	Search(ctx context.Context, query string, limit int) ([]*core.ListingRecord, error)

	// Platform identifies the marketplace this scraper targets.
	Platform() core.Platform
}

// Config holds settings shared by the marketplace scrapers.
type Config struct {
	// UserAgent is sent with every page load.
	UserAgent string

	// PageTimeout bounds a single page navigation and extraction.
	PageTimeout time.Duration

	// MaxRetries is the number of attempts for a failed page load.
	MaxRetries int

	// ChromePath overrides browser binary discovery when non-empty.
	ChromePath string
}

// DefaultConfig returns the scraper settings used by the standard pipeline.
func DefaultConfig() Config {
	return Config{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		PageTimeout: 60 * time.Second,
		MaxRetries:  3,
	}
}
