package semantic

import "errors"

var (
	// ErrNilEmbedder is returned when a Filter is constructed without an embedder.
	ErrNilEmbedder = errors.New("embedder cannot be nil")

	// ErrNilLogger is returned when a nil logger is passed to WithLogger.
	ErrNilLogger = errors.New("logger cannot be nil")

	// ErrNilCache is returned when a CachedEmbedder is constructed without
	// a cache.
	ErrNilCache = errors.New("embedding cache cannot be nil")

	// ErrEmptyQuery is returned when the filter query is empty or blank.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrInvalidThreshold is returned when the similarity threshold is
	// outside [0, 1].
	ErrInvalidThreshold = errors.New("similarity threshold must be between 0 and 1")

	// ErrNilVector is returned when a nil vector is passed to CosineSimilarity.
	ErrNilVector = errors.New("vector cannot be nil")

	// ErrDimensionMismatch is returned when two vectors of different
	// dimensions are compared.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)
