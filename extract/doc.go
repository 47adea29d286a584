// Package extract recovers structured product attributes from noisy
// free-text listing titles.
//
// Attributes parses a title into brand, base name, color, storage, weight,
// size and dimensions; Classify assigns a coarse product category. Both
// are deterministic pure functions: identical input always yields
// identical output, and neither ever fails on malformed input.
package extract
