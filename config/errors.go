package config

import "errors"

var (
	// ErrUnreadable is returned when the config file cannot be read.
	ErrUnreadable = errors.New("config file cannot be read")

	// ErrMalformed is returned when the config file is not valid TOML.
	ErrMalformed = errors.New("config file is not valid TOML")

	// ErrNoDatabasePath is returned when persistence is enabled without a
	// database path.
	ErrNoDatabasePath = errors.New("database path is required unless in_memory is set")

	// ErrInvalidTimeout is returned when the page timeout is not positive.
	ErrInvalidTimeout = errors.New("page timeout must be positive")

	// ErrInvalidRetries is returned when the retry count is not positive.
	ErrInvalidRetries = errors.New("max retries must be positive")

	// ErrInvalidSearchLimit is returned when the search limit is not
	// positive.
	ErrInvalidSearchLimit = errors.New("search limit must be positive")

	// ErrInvalidThreshold is returned when the filter threshold is outside
	// [0, 1].
	ErrInvalidThreshold = errors.New("filter threshold must be between 0 and 1")

	// ErrNoEmbeddingHost is returned when the embedding host is empty.
	ErrNoEmbeddingHost = errors.New("embedding host is required")

	// ErrNoEmbeddingModel is returned when the embedding model is empty.
	ErrNoEmbeddingModel = errors.New("embedding model is required")
)
