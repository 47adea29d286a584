package scrape

import "errors"

var (
	// ErrEmptyQuery is returned when Search is called with a blank query.
	ErrEmptyQuery = errors.New("search query cannot be empty")

	// ErrPageLoad is returned when a search page fails to load after all
	// retries.
	ErrPageLoad = errors.New("failed to load search page")
)
