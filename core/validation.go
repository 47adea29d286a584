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


package core

import "fmt"

// ValidateListingRecord validates a ListingRecord according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Platform must be a known marketplace
//   - Price must not be negative (0 means unknown)
//   - Rating must be within 0-5 (0 means unknown)
//   - ReviewCount must not be negative
//
// NOT validated:
//   - ID (0 is valid; IDs are assigned on persistence)
//   - Similarity (populated by the semantic filter)
func ValidateListingRecord(record *ListingRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidListing)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidListing, ErrEmptyTitle)
	}

	if err := ValidatePlatform(record.Platform); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidListing, err)
	}

	if record.Price < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidListing, ErrNegativePrice)
	}

	if record.Rating < 0 || record.Rating > 5 {
		return fmt.Errorf("%w: %w", ErrInvalidListing, ErrInvalidRating)
	}

	if record.ReviewCount < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidListing, ErrNegativeReviewCount)
	}

	return nil
}

// ValidatePlatform validates that a Platform has a known value.
func ValidatePlatform(platform Platform) error {
	if platform != PlatformAmazon && platform != PlatformFlipkart {
		return fmt.Errorf("%w: value %q", ErrInvalidPlatform, platform)
	}
	return nil
}
