package extract

import (
	"regexp"
	"slices"
	"strings"

	"github.com/pricelens/pricelens/core"
)

// Attribute extraction is deterministic and side-effect free: the same
// title always produces byte-identical attributes. All patterns are
// compiled once at package load.
var (
	storageRe    = regexp.MustCompile(`(?i)(\d+)\s*GB`)
	dashSuffixRe = regexp.MustCompile(`\s*-\s*([A-Za-z\s0-9]+)$`)
	specPrefixRe = regexp.MustCompile(`(?i)^\d+\s*(?:GB|MP|RAM)`)
	parenRe      = regexp.MustCompile(`\(([A-Za-z\s0-9]+)(?:,|\))`)
	spacesRe     = regexp.MustCompile(`\s+`)

	weightRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:g|gm|gram)`),
		regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:oz|ounce)`),
		regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:ml|litre|liter)`),
	}
	sizeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:oz|ounces)`),
		regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:g|ml)`),
	}
	dimensionsRe = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*x\s*(\d+\.?\d*)\s*x\s*(\d+\.?\d*)\s*(?:cm|mm|in|inch)`)

	colorRe = buildColorRegexp()
)

// buildColorRegexp builds a single case-insensitive alternation over the
// color vocabulary, longer phrases first so they win at a shared position.
func buildColorRegexp() *regexp.Regexp {
	phrases := slices.Clone(colorPhrases)
	slices.SortStableFunc(phrases, func(a, b string) int {
		return len(b) - len(a)
	})
	for i, p := range phrases {
		phrases[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)` + strings.Join(phrases, "|"))
}

// minBoundaryIndex is the earliest position at which a parenthesis, colon
// or semicolon is taken to mark the end of the core product name. Anything
// earlier is assumed to be part of the name itself.
const minBoundaryIndex = 15

// Attributes extracts structured product attributes from a raw listing
// title. The color strategies are tried in a fixed order and the first
// success wins; if none matches, Color is empty. Extraction never fails.
func Attributes(title string) core.ExtractedAttributes {
	attrs := core.ExtractedAttributes{
		BaseName: title,
		Category: Classify(title),
	}

	// Brand: first token long enough to be a word, not an initialism.
	words := significantTokens(title)
	if len(words) > 0 {
		attrs.Brand = words[0]
	}

	// Core name boundary: the earliest of '(', ': ', '; ' beyond the
	// minimum index. The prefix is only used when its length sits strictly
	// between 10 and 40% of the full title; otherwise fall back to the
	// first six significant tokens.
	boundary := len(title)
	for _, marker := range []string{"(", ": ", "; "} {
		if idx := strings.Index(title, marker); idx >= minBoundaryIndex && idx < boundary {
			boundary = idx
		}
	}
	potential := strings.TrimSpace(title[:boundary])
	if len(potential) > 10 && float64(len(potential)) < float64(len(title))*0.4 {
		attrs.BaseName = potential
	} else {
		take := min(6, len(words))
		attrs.BaseName = strings.Join(words[:take], " ")
	}

	// Storage: digit text only, no unit conversion.
	if m := storageRe.FindStringSubmatch(title); m != nil {
		attrs.StorageGB = m[1]
	}

	// Color strategy 1: trailing "- <words>" suffix, unless the suffix
	// looks like a spec fragment ("128GB", "48MP", "8 RAM").
	if loc := dashSuffixRe.FindStringSubmatchIndex(title); loc != nil {
		candidate := strings.TrimSpace(title[loc[2]:loc[3]])
		if !specPrefixRe.MatchString(candidate) {
			attrs.Color = candidate
			attrs.BaseName = strings.TrimSpace(title[:loc[0]])
		}
	}

	// Color strategy 2: first parenthetical content up to a comma or the
	// closing paren, rejected when it names hardware rather than finish.
	if attrs.Color == "" {
		if loc := parenRe.FindStringSubmatchIndex(title); loc != nil {
			candidate := strings.TrimSpace(title[loc[2]:loc[3]])
			if len(candidate) > 1 && !containsSpecWord(candidate) {
				attrs.Color = candidate
				attrs.BaseName = strings.TrimSpace(title[:loc[0]])
			}
		}
	}

	// Color strategy 3: scan for a known color phrase anywhere in the
	// title. The matched span is removed from the base name so that
	// "iPhone 17 Pro Cosmic Orange 256GB" leaves "iPhone 17 Pro 256GB".
	if attrs.Color == "" {
		if loc := colorRe.FindStringIndex(title); loc != nil {
			attrs.Color = titleCase(title[loc[0]:loc[1]])
			stripped := title[:loc[0]] + " " + title[loc[1]:]
			stripped = strings.ReplaceAll(stripped, ";", " ")
			attrs.BaseName = strings.TrimSpace(spacesRe.ReplaceAllString(stripped, " "))
		}
	}

	// Weight: first matching unit family wins, no further search.
	for _, re := range weightRes {
		if m := re.FindString(title); m != "" {
			attrs.Weight = strings.TrimSpace(m)
			break
		}
	}

	// Size: numeric capture only, independent of (and possibly duplicating)
	// the weight value.
	for _, re := range sizeRes {
		if m := re.FindStringSubmatch(title); m != nil {
			attrs.Size = m[1]
			break
		}
	}

	if m := dimensionsRe.FindStringSubmatch(title); m != nil {
		attrs.Dimensions = m[1] + "x" + m[2] + "x" + m[3]
	}

	return attrs
}

// significantTokens returns whitespace tokens longer than two characters.
func significantTokens(title string) []string {
	fields := strings.Fields(title)
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}

func containsSpecWord(candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, spec := range nonColorSpecs {
		if strings.Contains(lower, spec) {
			return true
		}
	}
	return false
}

// titleCase capitalizes each space-separated word ("deep blue" -> "Deep Blue").
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
