package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing over the listing URL, so the
// same listing always maps to the same key regardless of scrape order.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Platform identifies the marketplace a listing was scraped from.
type Platform string

const (
	// PlatformAmazon is the Amazon marketplace.
	PlatformAmazon Platform = "amazon"
	// PlatformFlipkart is the Flipkart marketplace.
	PlatformFlipkart Platform = "flipkart"
)

// ListingRecord is a single scraped product listing.
// Price and Rating use 0 to mean "not available"; scraped pages frequently
// omit either field. Records are immutable once produced by a scraper.
type ListingRecord struct {
	Id          ID
	Platform    Platform
	Title       string
	Price       float64
	Rating      float64
	ReviewCount int
	URL         string
	Description string
	Similarity  float64 // query similarity attached by the semantic filter
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Category is a coarse product category used to keep accessories from
// matching against the products they accessorize.
type Category string

const (
	CategoryPhoneCase       Category = "phone_case"
	CategoryScreenProtector Category = "screen_protector"
	CategoryAccessory       Category = "accessory"
	CategoryPhone           Category = "phone"
	CategorySkincare        Category = "skincare"
	CategoryElectronics     Category = "electronics"
	CategoryGeneral         Category = "general"
)

// ExtractedAttributes holds the structured attributes recovered from a raw
// listing title. Extraction is deterministic: the same title always yields
// the same attributes. StorageGB holds the digit text only (e.g. "256").
type ExtractedAttributes struct {
	BaseName   string
	Brand      string
	Color      string
	StorageGB  string
	Weight     string
	Size       string
	Dimensions string
	Category   Category
}

// MatchFlags records which attribute checks a candidate pair passed.
type MatchFlags struct {
	Category bool
	Brand    bool
	Name     bool
	Storage  bool
	Color    bool
	Size     bool
	Weight   bool
}

// CriteriaMet counts the flags used for tier assignment
// (brand, storage, color and size).
func (f MatchFlags) CriteriaMet() int {
	n := 0
	for _, ok := range []bool{f.Brand, f.Storage, f.Color, f.Size} {
		if ok {
			n++
		}
	}
	return n
}

// MatchCandidate is a scored pairing of one listing from each platform.
type MatchCandidate struct {
	ListingA       *ListingRecord
	ListingB       *ListingRecord
	Score          float64
	Flags          MatchFlags
	NameSimilarity float64 // percent, 0-100
}

// Tier is the confidence label attached to a match result.
type Tier string

const (
	TierPerfect         Tier = "perfect"
	TierExcellent       Tier = "excellent"
	TierGood            Tier = "good"
	TierPartial         Tier = "partial"
	TierWeak            Tier = "weak"
	TierColorStorage    Tier = "color_storage_match"
	TierColorOnly       Tier = "color_match_only"
	TierPartialMismatch Tier = "partial_match_with_mismatches"
	TierNoMatch         Tier = "no_match"
	TierNoResults       Tier = "no_results"
)

// Matched reports whether the tier carries a usable listing pair.
func (t Tier) Matched() bool {
	return t != TierNoMatch && t != TierNoResults
}

// Fallback reports whether the tier was produced by the fallback ladder
// rather than the primary gated search.
func (t Tier) Fallback() bool {
	switch t {
	case TierColorStorage, TierColorOnly, TierPartialMismatch:
		return true
	}
	return false
}

// Rejection is a diagnostic for a candidate pair that failed a gate.
// Rejections are control flow, not errors: the scan records the reason and
// moves on to the next pair.
type Rejection struct {
	TitleA string
	TitleB string
	Gate   string
	Reason string
}

// MatchResult is the outcome of resolving two listing sets against each
// other. ListingA and ListingB are nil when Tier is no_match or no_results.
type MatchResult struct {
	ListingA       *ListingRecord
	ListingB       *ListingRecord
	Tier           Tier
	Score          float64
	Flags          MatchFlags
	NameSimilarity float64
	Warnings       []string
	Rejections     []Rejection
}
