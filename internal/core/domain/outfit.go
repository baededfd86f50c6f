package domain

// A GarmentCategory is the closed set of outfit slots a product can fill.
// It is derived from text on demand, never stored.
type GarmentCategory string

const (
	CategoryTop       GarmentCategory = "top"
	CategoryBottom    GarmentCategory = "bottom"
	CategoryFootwear  GarmentCategory = "footwear"
	CategoryAccessory GarmentCategory = "accessory"
	CategoryOuterwear GarmentCategory = "outerwear"
	CategoryOther     GarmentCategory = "other"
)

// A StyleTag is the coarse aesthetic classification derived from text.
// StyleVersatile is the default when no keyword matches.
type StyleTag string

const (
	StyleEthnic    StyleTag = "ethnic"
	StyleWestern   StyleTag = "western"
	StyleCasual    StyleTag = "casual"
	StyleFormal    StyleTag = "formal"
	StyleParty     StyleTag = "party"
	StyleVersatile StyleTag = "versatile"
)

// A ColorTag is one of the fixed palette colors, or ColorNone when no
// palette color occurs in the product text.
type ColorTag string

const ColorNone ColorTag = ""

// OutfitComplements holds the selected complements per outfit slot.
// No product ID and no (normalized name, price) pair appears more than
// once across the whole structure.
type OutfitComplements struct {
	Tops        []Product
	Bottoms     []Product
	Footwear    []Product
	Accessories []Product
	Outerwear   []Product
}

// Empty reports whether no bucket holds any complement.
func (c OutfitComplements) Empty() bool {
	return len(c.Tops) == 0 && len(c.Bottoms) == 0 && len(c.Footwear) == 0 &&
		len(c.Accessories) == 0 && len(c.Outerwear) == 0
}

type OutfitSuggestion struct {
	Anchor        Product
	Complements   OutfitComplements
	TotalPrice    float64
	StylingTips   string
	OccasionMatch string
}
