package domain

import "strings"

// A Product is a sellable catalog item. Products arrive from the search
// collaborator or the static catalog and are never mutated by the core.
type Product struct {
	ID            string
	Name          string
	Price         float64
	OriginalPrice float64
	Rating        float64
	Reviews       int
	Image         string
	Category      string
	Seller        string
	Description   string
	Features      []string
	Colors        []string
	Sizes         []string
	InStock       bool
	Source        string
	URL           string
}

// SearchText returns the lower-cased concatenation of name and description
// used by all keyword heuristics.
func (p Product) SearchText() string {
	return strings.ToLower(p.Name + " " + p.Description)
}

// Valid reports whether the product carries the fields the core requires:
// a non-empty trimmed identifier and a non-negative price.
func (p Product) Valid() bool {
	return strings.TrimSpace(p.ID) != "" && p.Price >= 0
}

type SearchResult struct {
	Products            []Product
	Reasoning           string
	PersonalizedMessage string
}

type WishlistFolder struct {
	ID       string
	Name     string
	Products []Product
}
