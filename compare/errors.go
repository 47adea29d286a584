package compare

import "errors"

var (
	// ErrNilScraper is returned when a Pipeline is constructed without a
	// scraper for each marketplace.
	ErrNilScraper = errors.New("scraper cannot be nil")

	// ErrNilFilter is returned when a Pipeline is constructed without a
	// semantic filter.
	ErrNilFilter = errors.New("filter cannot be nil")

	// ErrNilMatcher is returned when a Pipeline is constructed without a
	// matcher.
	ErrNilMatcher = errors.New("matcher cannot be nil")

	// ErrNilLogger is returned when a nil logger is passed to WithLogger.
	ErrNilLogger = errors.New("logger cannot be nil")

	// ErrNilRepository is returned when a nil repository is passed to
	// WithListingRepository.
	ErrNilRepository = errors.New("listing repository cannot be nil")

	// ErrInvalidPoolSize is returned when the worker pool size is not
	// positive.
	ErrInvalidPoolSize = errors.New("pool size must be positive")

	// ErrInvalidSearchLimit is returned when the per-platform search limit
	// is not positive.
	ErrInvalidSearchLimit = errors.New("search limit must be positive")

	// ErrEmptyQuery is returned when Compare is called with a blank query.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrScrapeFailed is returned when every marketplace scrape failed and
	// there is nothing to compare.
	ErrScrapeFailed = errors.New("all marketplace scrapes failed")
)
