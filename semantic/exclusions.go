package semantic

import "strings"

// exclusionKeywords is the denylist used to drop listings that describe
// something other than the product itself: accessories, refurbished or used
// stock, bundles, and warranty add-ons. Matching is substring containment
// on the lowercased title.
var exclusionKeywords = []string{
	// Accessories
	"case", "cover", "protector", "charger", "cable", "adapter",
	"stand", "holder", "mount", "screen protector", "glass",
	"tempered glass", "foil", "sticker", "pouch", "bag",
	"sleeve", "flip cover", "flip case", "leather case",

	// Refurbished/Used
	"refurbished", "used", "open box", "b grade", "c grade",
	"renewed", "reconditioned", "certified", "seller refurbished",

	// Bundles/Deals
	"bundle", "combo", "pack", "set", "kit", "pair",

	// Warranty/Insurance
	"warranty", "insurance", "protection plan", "extended warranty",
	"care plan", "accidental damage",
}

// IsExcluded reports whether a title matches the accessory denylist.
// An empty title is not excluded; blank-title handling is the caller's
// concern.
func IsExcluded(title string) bool {
	if title == "" {
		return false
	}

	lower := strings.ToLower(title)
	for _, keyword := range exclusionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
