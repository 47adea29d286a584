// Package core defines the domain model for pricelens.
//
// The central types are ListingRecord (a scraped product listing),
// ExtractedAttributes (structured attributes recovered from a listing
// title) and MatchResult (the outcome of resolving two listing sets
// against each other, tagged with a confidence Tier).
//
// Absence of a match is modeled as data, not as an error: TierNoMatch and
// TierNoResults are ordinary tier values, and gate rejections travel as
// Rejection diagnostics on the result.
package core
