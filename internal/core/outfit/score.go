package outfit

import (
	"strings"

	"github.com/styleloom/outfitter/internal/core/domain"
)

const compatibilityFloor = 0.3

// complementaryPairs lists the color pairs rewarded by the scorer.
// Membership is symmetric.
var complementaryPairs = [][2]domain.ColorTag{
	{"red", "green"},
	{"blue", "orange"},
	{"yellow", "purple"},
	{"black", "white"},
	{"pink", "green"},
	{"brown", "blue"},
}

// Score rates how well candidate pairs with anchor for the given occasion.
// The result is always within [0, 1].
//
// Additive terms: +0.4 shared style, +0.3 identical color or +0.25
// complementary pair, -0.5 same garment category else +0.3, +0.2 occasion
// fit, +0.1 scaled by the price ratio of the cheaper to the pricier item.
func Score(anchor, candidate domain.Product, occasion string) float64 {
	var score float64

	if Style(anchor) == Style(candidate) {
		score += 0.4
	}

	anchorColor := Color(anchor)
	candidateColor := Color(candidate)
	if anchorColor != domain.ColorNone && candidateColor != domain.ColorNone {
		switch {
		case anchorColor == candidateColor:
			score += 0.3
		case complementaryColors(anchorColor, candidateColor):
			score += 0.25
		}
	}

	if Classify(anchor) == Classify(candidate) {
		score -= 0.5
	} else {
		score += 0.3
	}

	if occasion != "" && occasionAppropriate(candidate, occasion) {
		score += 0.2
	}

	if anchor.Price > 0 && candidate.Price > 0 {
		ratio := min(anchor.Price, candidate.Price) / max(anchor.Price, candidate.Price)
		score += ratio * 0.1
	}

	return clamp01(score)
}

func complementaryColors(a, b domain.ColorTag) bool {
	for _, pair := range complementaryPairs {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}

// occasionAppropriate checks the candidate text against occasion-specific
// keywords. Occasions outside the known set are always appropriate.
func occasionAppropriate(p domain.Product, occasion string) bool {
	text := p.SearchText()
	occasion = strings.ToLower(occasion)

	switch {
	case strings.Contains(occasion, "office") || strings.Contains(occasion, "formal"):
		return containsAny(text, []string{"formal", "office", "professional"})
	case strings.Contains(occasion, "party") || strings.Contains(occasion, "festive"):
		return containsAny(text, []string{"party", "festive", "celebration"})
	case strings.Contains(occasion, "casual"):
		return containsAny(text, []string{"casual", "everyday", "comfortable"})
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
