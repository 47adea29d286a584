package core

import "errors"

var (
	// ErrInvalidListing indicates a listing record that fails domain validation.
	ErrInvalidListing = errors.New("invalid listing record")

	// ErrEmptyTitle indicates a listing with no title.
	ErrEmptyTitle = errors.New("listing title is empty")

	// ErrInvalidPlatform indicates an unknown marketplace value.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrNegativePrice indicates a listing with a price below zero.
	ErrNegativePrice = errors.New("price must not be negative")

	// ErrInvalidRating indicates a rating outside the 0-5 range.
	ErrInvalidRating = errors.New("rating must be between 0 and 5")

	// ErrNegativeReviewCount indicates a review count below zero.
	ErrNegativeReviewCount = errors.New("review count must not be negative")
)
