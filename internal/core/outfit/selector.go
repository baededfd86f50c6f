package outfit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/styleloom/outfitter/internal/core/domain"
)

// budgetShare caps a single complement at this share of the outfit budget,
// so no one item dominates the total.
const budgetShare = 0.3

// perBucketPrelim bounds how many candidates each category contributes
// before the cross-category dedup walk.
const perBucketPrelim = 3

// finalCaps is the per-bucket limit for the assembled complements.
var finalCaps = map[domain.GarmentCategory]int{
	domain.CategoryTop:       3,
	domain.CategoryBottom:    3,
	domain.CategoryFootwear:  2,
	domain.CategoryAccessory: 2,
	domain.CategoryOuterwear: 2,
}

// bucketOrder fixes the walk order for selection, price totaling and
// narration.
var bucketOrder = []domain.GarmentCategory{
	domain.CategoryTop,
	domain.CategoryBottom,
	domain.CategoryFootwear,
	domain.CategoryAccessory,
	domain.CategoryOuterwear,
}

type scoredProduct struct {
	product domain.Product
	score   float64
}

// SelectComplements filters, scores and ranks the candidate pool against
// the anchor, then fills the outfit buckets. maxBudget <= 0 means no
// budget constraint. The second return value is the flat list of accepted
// items in bucket-walk order.
//
// Tie-break rule: candidates with equal scores keep their pool order
// (stable sort), so the output is deterministic for a fixed input.
func SelectComplements(
	anchor domain.Product, pool []domain.Product, occasion string, maxBudget float64,
) (domain.OutfitComplements, []domain.Product) {
	scored := scorePool(anchor, pool, occasion, maxBudget)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	buckets := partition(scored)
	return fillBuckets(buckets)
}

func scorePool(
	anchor domain.Product, pool []domain.Product, occasion string, maxBudget float64,
) []scoredProduct {
	var scored []scoredProduct
	for _, candidate := range pool {
		if candidate.ID == anchor.ID {
			continue
		}
		if strings.TrimSpace(candidate.ID) == "" {
			continue
		}
		if maxBudget > 0 && candidate.Price > maxBudget*budgetShare {
			continue
		}
		score := Score(anchor, candidate, occasion)
		if score <= compatibilityFloor {
			continue
		}
		scored = append(scored, scoredProduct{candidate, score})
	}
	return scored
}

// partition splits the ranked candidates into category buckets, keeping at
// most perBucketPrelim per bucket. Products classified as CategoryOther
// fill no outfit slot and are dropped.
func partition(scored []scoredProduct) map[domain.GarmentCategory][]domain.Product {
	buckets := make(map[domain.GarmentCategory][]domain.Product, len(bucketOrder))
	for _, sp := range scored {
		category := Classify(sp.product)
		if category == domain.CategoryOther {
			continue
		}
		if len(buckets[category]) < perBucketPrelim {
			buckets[category] = append(buckets[category], sp.product)
		}
	}
	return buckets
}

// fillBuckets walks the buckets in fixed order enforcing the
// cross-category identity invariant: a product ID, or a (lower-cased
// trimmed name, price) pair, is accepted at most once across all buckets.
// The name+price key compensates for upstream search responses that assign
// fresh random IDs to the same catalog item.
func fillBuckets(
	buckets map[domain.GarmentCategory][]domain.Product,
) (domain.OutfitComplements, []domain.Product) {
	var (
		complements domain.OutfitComplements
		accepted    []domain.Product
		seenIDs     = make(map[string]struct{})
		seenCombos  = make(map[string]struct{})
	)

	for _, category := range bucketOrder {
		target := bucketSlot(&complements, category)
		for _, p := range buckets[category] {
			if len(*target) >= finalCaps[category] {
				break
			}
			combo := comboKey(p)
			if _, ok := seenIDs[p.ID]; ok {
				continue
			}
			if _, ok := seenCombos[combo]; ok {
				continue
			}
			seenIDs[p.ID] = struct{}{}
			seenCombos[combo] = struct{}{}
			*target = append(*target, p)
			accepted = append(accepted, p)
		}
	}

	return complements, accepted
}

func bucketSlot(
	c *domain.OutfitComplements, category domain.GarmentCategory,
) *[]domain.Product {
	switch category {
	case domain.CategoryTop:
		return &c.Tops
	case domain.CategoryBottom:
		return &c.Bottoms
	case domain.CategoryFootwear:
		return &c.Footwear
	case domain.CategoryAccessory:
		return &c.Accessories
	default:
		return &c.Outerwear
	}
}

func comboKey(p domain.Product) string {
	return fmt.Sprintf("%s_%v", strings.TrimSpace(strings.ToLower(p.Name)), p.Price)
}
