package match

import (
	"fmt"
	"slices"
	"strings"
)

// variantGroup is a family of keywords that distinguish otherwise-similar
// product lines. When rejectAsymmetric is set, one side carrying a group
// keyword while the other carries none is itself a rejection; for the
// finish group, asymmetric presence is tolerated because marketplaces
// describe finishes inconsistently.
type variantGroup struct {
	name             string
	keywords         []string
	rejectAsymmetric bool
}

// Kept as data tables so new product lines can be covered without touching
// the guard logic.
var variantGroups = []variantGroup{
	{
		name:     "finish",
		keywords: []string{"matte lock", "very matte", "ultra matte", "matte finish", "semi-matte"},
	},
	{
		name:             "size_class",
		keywords:         []string{"pro", "max", "mini", "plus", "ultra"},
		rejectAsymmetric: true,
	},
	{
		name:             "material",
		keywords:         []string{"titanium", "stainless", "aluminum", "ceramic"},
		rejectAsymmetric: true,
	},
}

// VariantMismatch checks two lowercased base names against the variant
// keyword groups. It returns a non-empty reason when the pair describes
// different product variants ("iPhone 17 Pro" vs "iPhone 17 Pro Max"),
// and "" when no group rejects. The first rejecting group short-circuits.
func VariantMismatch(nameA, nameB string) string {
	for _, group := range variantGroups {
		foundA := group.present(nameA)
		foundB := group.present(nameB)

		if len(foundA) > 0 && len(foundB) > 0 {
			if !slices.Equal(foundA, foundB) {
				return fmt.Sprintf("variant mismatch (%s): %v vs %v", group.name, foundA, foundB)
			}
			continue
		}

		if (len(foundA) > 0 || len(foundB) > 0) && group.rejectAsymmetric {
			return fmt.Sprintf("asymmetric variant (%s): %v vs %v",
				group.name, orNone(foundA), orNone(foundB))
		}
	}
	return ""
}

// present returns the group keywords contained in the name, in table order.
func (g variantGroup) present(name string) []string {
	var found []string
	for _, kw := range g.keywords {
		if strings.Contains(name, kw) {
			found = append(found, kw)
		}
	}
	return found
}

func orNone(found []string) any {
	if len(found) == 0 {
		return "none"
	}
	return found
}
