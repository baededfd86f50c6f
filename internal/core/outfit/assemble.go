package outfit

import (
	"fmt"

	"github.com/styleloom/outfitter/internal/core/domain"
)

const defaultOccasion = "casual"

// Assemble builds a complete outfit suggestion around the anchor from the
// candidate pool. occasion may be empty (reported as "casual") and
// budget <= 0 means unconstrained. An empty pool, or a pool with no
// qualifying complement, yields a valid suggestion with empty buckets and
// TotalPrice equal to the anchor price.
func Assemble(
	anchor domain.Product, pool []domain.Product, occasion string, budget float64,
) (domain.OutfitSuggestion, error) {
	const op = "outfit.Assemble"

	if !anchor.Valid() {
		return domain.OutfitSuggestion{},
			fmt.Errorf("%s: anchor %q: %w", op, anchor.ID, domain.ErrInvalidProduct)
	}

	complements, _ := SelectComplements(anchor, pool, occasion, budget)
	representatives := representativeItems(complements)

	totalPrice := anchor.Price
	for _, item := range representatives {
		totalPrice += item.Price
	}

	occasionMatch := occasion
	if occasionMatch == "" {
		occasionMatch = defaultOccasion
	}

	return domain.OutfitSuggestion{
		Anchor:        anchor,
		Complements:   complements,
		TotalPrice:    totalPrice,
		StylingTips:   StylingTips(anchor, representatives, occasion),
		OccasionMatch: occasionMatch,
	}, nil
}

// representativeItems takes the first complement of each priced bucket in
// fixed order. Outerwear contributes to neither the total nor the
// narration; it is an optional layer on top of the priced outfit.
func representativeItems(c domain.OutfitComplements) []domain.Product {
	var reps []domain.Product
	for _, bucket := range [][]domain.Product{c.Tops, c.Bottoms, c.Footwear, c.Accessories} {
		if len(bucket) > 0 {
			reps = append(reps, bucket[0])
		}
	}
	return reps
}
