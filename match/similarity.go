package match

import "strings"

// Stop words excluded from name comparison, alongside any token of length
// two or less.
var similarityStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true, "with": true,
	"by": true, "is": true, "from": true, "-": true, "–": true,
}

// shortNameThreshold is the token count at or below which a name is treated
// as a likely incomplete extraction and compared leniently.
const shortNameThreshold = 2

// NameSimilarity compares two display names and returns whether they are
// exactly identical after normalization, plus an overlap percentage in
// [0, 100]. Callers apply their own thresholds.
//
// The overlap ratio is tokens-of-A-found-in-B divided by max(|A|, |B|), so
// the measure is not guaranteed symmetric under argument swap. This is
// long-standing behavior that downstream thresholds were tuned against;
// see the regression test before changing it.
func NameSimilarity(a, b string) (bool, float64) {
	normA := strings.ToLower(strings.TrimSpace(a))
	normB := strings.ToLower(strings.TrimSpace(b))

	if normA == normB {
		return true, 100
	}

	wordsA := significantWords(normA)
	wordsB := significantWords(normB)

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return false, 0
	}

	// Lenient handling for incomplete names: when one side has only a
	// couple of significant tokens, full containment of the shorter side
	// counts as a good (75) but never identical match.
	if len(wordsA) <= shortNameThreshold || len(wordsB) <= shortNameThreshold {
		shorter, longer := wordsA, wordsB
		if len(wordsA) > len(wordsB) {
			shorter, longer = wordsB, wordsA
		}

		longerSet := wordSet(longer)
		overlap := 0
		for _, w := range shorter {
			if longerSet[w] {
				overlap++
			}
		}
		percent := float64(overlap) / float64(len(shorter)) * 100
		if percent >= 100 {
			return false, 75
		}
		return false, percent
	}

	setB := wordSet(wordsB)
	overlap := 0
	for _, w := range wordsA {
		if setB[w] {
			overlap++
		}
	}

	maxLen := max(len(wordsA), len(wordsB))
	return false, float64(overlap) / float64(maxLen) * 100
}

func significantWords(name string) []string {
	fields := strings.Fields(name)
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) > 2 && !similarityStopwords[w] {
			words = append(words, w)
		}
	}
	return words
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
