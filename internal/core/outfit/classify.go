package outfit

import (
	"strings"

	"github.com/styleloom/outfitter/internal/core/domain"
)

// categoryRules is evaluated in order and the first matching predicate
// wins. The order decides the outcome for ambiguous text such as a
// "jacket dress", so it must stay fixed.
var categoryRules = []struct {
	category     domain.GarmentCategory
	nameKeywords []string
	catKeywords  []string
}{
	{
		domain.CategoryTop,
		[]string{"kurti", "shirt", "top", "blouse", "crop", "tunic"},
		[]string{"top"},
	},
	{
		domain.CategoryBottom,
		[]string{"jeans", "palazzo", "pant", "skirt", "legging", "trouser", "short"},
		[]string{"bottom"},
	},
	{
		domain.CategoryFootwear,
		[]string{"shoe", "sandal", "heel", "sneaker", "boot", "flip", "slipper"},
		[]string{"footwear", "shoes"},
	},
	{
		domain.CategoryAccessory,
		[]string{"bag", "jewelry", "watch", "scarf", "belt", "necklace", "earring", "bracelet", "ring"},
		[]string{"accessories", "jewelry"},
	},
	{
		domain.CategoryOuterwear,
		[]string{"jacket", "coat", "blazer", "cardigan", "sweater", "hoodie"},
		[]string{"outerwear"},
	},
}

// Classify maps a product to exactly one garment category from its name
// and category label, defaulting to CategoryOther.
func Classify(p domain.Product) domain.GarmentCategory {
	name := strings.ToLower(p.Name)
	category := strings.ToLower(p.Category)

	for _, rule := range categoryRules {
		if containsAny(name, rule.nameKeywords) || containsAny(category, rule.catKeywords) {
			return rule.category
		}
	}
	return domain.CategoryOther
}
