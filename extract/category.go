package extract

import (
	"strings"

	"github.com/pricelens/pricelens/core"
)

// Keyword families for category detection. Accessory families are checked
// before the phone family so that "iPhone 17 Pro Back Cover" classifies as
// a case, not as the phone it fits.
var (
	caseKeywords = []string{
		"cover", "case", "flip case", "back cover", "protective case", "bumper",
	}
	screenProtectorKeywords = []string{
		"tempered glass", "screen protector", "glass protector",
	}
	accessoryKeywords = []string{
		"charger", "charging cable", "usb cable", "adapter",
	}
	phoneKeywords = []string{
		"smartphone", "mobile phone", "mobile", "phone", "android",
	}
	phoneCaseHints = []string{
		"cover", "case", "flip", "back",
	}
	skincareKeywords = []string{
		"ointment", "cream", "lotion", "serum", "moisturizer", "sunscreen",
	}
	electronicsKeywords = []string{
		"tablet", "ipad", "laptop", "monitor", "tv",
	}
)

// Classify detects the coarse product category of a title using ordered
// keyword-containment checks. Pure lookup, no learning.
func Classify(title string) core.Category {
	lower := strings.ToLower(title)

	if containsAny(lower, caseKeywords) {
		return core.CategoryPhoneCase
	}
	if containsAny(lower, screenProtectorKeywords) {
		return core.CategoryScreenProtector
	}
	if containsAny(lower, accessoryKeywords) {
		return core.CategoryAccessory
	}
	if containsAny(lower, phoneKeywords) {
		// A title can mention the phone it accessorizes; the hint words
		// push it back into the case bucket.
		if containsAny(lower, phoneCaseHints) {
			return core.CategoryPhoneCase
		}
		return core.CategoryPhone
	}
	if containsAny(lower, skincareKeywords) {
		return core.CategorySkincare
	}
	if containsAny(lower, electronicsKeywords) {
		return core.CategoryElectronics
	}

	return core.CategoryGeneral
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
