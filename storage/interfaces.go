package storage

import (
	"context"

	"github.com/pricelens/pricelens/core"
)

// Repository provides operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ListingRepository persists scraped listings. A listing's identity is its
// URL: upserting a record whose URL is already stored updates the stored
// record in place, preserving its original InsertedAt.
type ListingRepository interface {
	Repository

	// UpsertListings inserts or updates listings keyed by URL hash.
	// New records get InsertedAt and UpdatedAt set; existing records keep
	// InsertedAt and get a fresh UpdatedAt. Returns the records with
	// identifiers and timestamps populated.
	UpsertListings(ctx context.Context, records ...*core.ListingRecord) ([]*core.ListingRecord, error)

	// GetListing retrieves a single listing by ID.
	// Returns ErrNotFound if the listing doesn't exist.
	GetListing(ctx context.Context, id core.ID) (*core.ListingRecord, error)

	// GetListingByURL retrieves a listing by its URL.
	// Returns ErrNotFound if no listing with that URL is stored.
	GetListingByURL(ctx context.Context, url string) (*core.ListingRecord, error)

	// GetListingsByPlatform retrieves all stored listings for one
	// marketplace, most recently updated first.
	GetListingsByPlatform(ctx context.Context, platform core.Platform) ([]*core.ListingRecord, error)

	// DeleteListings removes listings by their IDs.
	// Returns ErrNotFound if any listing doesn't exist.
	DeleteListings(ctx context.Context, ids ...core.ID) error

	// ClearPlatform removes every stored listing for one marketplace and
	// returns the number removed.
	ClearPlatform(ctx context.Context, platform core.Platform) (int, error)
}

// EmbeddingCache memoizes embedding vectors keyed by the text they were
// computed from, so repeated queries do not hit the model again.
type EmbeddingCache interface {
	// GetEmbedding returns the cached vector for the text.
	// Returns ErrNotFound when the text has not been embedded before.
	GetEmbedding(ctx context.Context, text string) ([]float32, error)

	// PutEmbedding stores the vector for the text, replacing any previous
	// entry.
	PutEmbedding(ctx context.Context, text string, vector []float32) error

	// Close releases resources held by the cache.
	Close() error
}
