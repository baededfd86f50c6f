// Package staticpool serves the built-in seed catalog used when both the
// live search backend and the catalog storage come up empty.
package staticpool

import (
	"strings"

	"github.com/styleloom/outfitter/internal/core/domain"
	"github.com/styleloom/outfitter/internal/core/port"
)

var _ port.FallbackCatalog = (*Pool)(nil)

const maxResults = 12

type Pool struct {
	products []domain.Product
}

func New() Pool {
	return Pool{products: seedProducts()}
}

// Search filters the seed catalog with the same keyword heuristics the
// product used before live search existed. An unmatched query returns the
// whole catalog (trimmed to maxResults) rather than nothing.
func (p Pool) Search(query string) []domain.Product {
	q := strings.ToLower(query)

	var filtered []domain.Product
	switch {
	case strings.Contains(q, "bottom"):
		filtered = p.filter(func(sp domain.Product) bool {
			return nameHasAny(sp, "jeans", "palazzo", "skirt", "pants") ||
				sp.Category == "Women Western"
		})
	case strings.Contains(q, "kurti") || strings.Contains(q, "ethnic"):
		filtered = p.filter(func(sp domain.Product) bool {
			return sp.Category == "Women Ethnic"
		})
	case strings.Contains(q, "western") || strings.Contains(q, "dress") || strings.Contains(q, "jeans"):
		filtered = p.filter(func(sp domain.Product) bool {
			return sp.Category == "Women Western"
		})
	case strings.Contains(q, "saree") || strings.Contains(q, "lehenga"):
		filtered = p.filter(func(sp domain.Product) bool {
			return nameHasAny(sp, "saree", "lehenga")
		})
	case strings.Contains(q, "matching") || strings.Contains(q, "combo"):
		filtered = p.filter(func(sp domain.Product) bool {
			return nameHasAny(sp, "set", "matching")
		})
	}

	if len(filtered) == 0 {
		filtered = append(filtered, p.products...)
	}

	if len(filtered) > maxResults {
		filtered = filtered[:maxResults]
	}
	return filtered
}

func (p Pool) filter(keep func(domain.Product) bool) []domain.Product {
	var out []domain.Product
	for _, sp := range p.products {
		if keep(sp) {
			out = append(out, sp)
		}
	}
	return out
}

func nameHasAny(p domain.Product, keywords ...string) bool {
	name := strings.ToLower(p.Name)
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
