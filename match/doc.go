// Package match pairs product listings from two marketplaces.
//
// The primary path ranks each side's listings by query relevance, then
// scans every cross-platform pair through ordered rejection gates
// (category, brand, name similarity, variant keywords, storage, color) and
// scores the survivors additively. The highest-scoring survivor wins a
// confidence tier from perfect down to weak.
//
// When no pair survives with sufficient name similarity, a three-level
// fallback ladder relaxes the requirements: matching color and storage,
// then matching color only, then an unconditional pairing of the
// top-ranked listings with warnings attached. Gate rejections are
// diagnostics, not errors; they are recorded on the result so callers can
// explain why other candidates lost.
package match
