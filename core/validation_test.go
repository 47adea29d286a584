package core

import (
	"errors"
	"testing"
)

func TestValidateListingRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *ListingRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &ListingRecord{
				Platform:    PlatformAmazon,
				Title:       "Apple iPhone 17 Pro (Deep Blue, 256 GB)",
				Price:       134900,
				Rating:      4.6,
				ReviewCount: 1245,
				URL:         "https://www.amazon.in/dp/B0TEST",
			},
			wantErr: nil,
		},
		{
			name: "valid record without price or rating",
			record: &ListingRecord{
				Platform: PlatformFlipkart,
				Title:    "Apple iPhone 17 Pro",
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidListing,
		},
		{
			name: "empty title",
			record: &ListingRecord{
				Platform: PlatformAmazon,
				Title:    "",
			},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "unknown platform",
			record: &ListingRecord{
				Platform: Platform("ebay"),
				Title:    "Apple iPhone 17 Pro",
			},
			wantErr: ErrInvalidPlatform,
		},
		{
			name: "negative price",
			record: &ListingRecord{
				Platform: PlatformAmazon,
				Title:    "Apple iPhone 17 Pro",
				Price:    -1,
			},
			wantErr: ErrNegativePrice,
		},
		{
			name: "rating above five",
			record: &ListingRecord{
				Platform: PlatformAmazon,
				Title:    "Apple iPhone 17 Pro",
				Rating:   5.1,
			},
			wantErr: ErrInvalidRating,
		},
		{
			name: "negative review count",
			record: &ListingRecord{
				Platform:    PlatformAmazon,
				Title:       "Apple iPhone 17 Pro",
				ReviewCount: -3,
			},
			wantErr: ErrNegativeReviewCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateListingRecord(tt.record)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateListingRecord() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateListingRecord() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateListingRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePlatform(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		wantErr  bool
	}{
		{"amazon", PlatformAmazon, false},
		{"flipkart", PlatformFlipkart, false},
		{"empty", Platform(""), true},
		{"unknown", Platform("ebay"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlatform(tt.platform)

			if tt.wantErr && err == nil {
				t.Error("ValidatePlatform() error = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidatePlatform() error = %v, want nil", err)
			}
			if err != nil && !errors.Is(err, ErrInvalidPlatform) {
				t.Errorf("ValidatePlatform() error = %v, want %v", err, ErrInvalidPlatform)
			}
		})
	}
}
