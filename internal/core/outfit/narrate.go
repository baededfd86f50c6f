package outfit

import (
	"fmt"
	"strings"

	"github.com/styleloom/outfitter/internal/core/domain"
)

// StylingTips renders the descriptive paragraph for an assembled outfit.
// Pure template filling: the output is fully determined by the inputs.
func StylingTips(
	anchor domain.Product, complements []domain.Product, occasion string,
) string {
	var b strings.Builder

	style := "stylish"
	if tag := Style(anchor); tag != domain.StyleVersatile {
		style = string(tag)
	}
	fmt.Fprintf(&b, "Create a %s look with this %s.", style, anchor.Name)

	pairOccasion := occasion
	if pairOccasion == "" {
		pairOccasion = "versatile"
	}

	for i, item := range complements {
		switch {
		case i == 0:
			fmt.Fprintf(&b, " Pair it with %s for a %s outfit.", item.Name, pairOccasion)
		case i == len(complements)-1:
			fmt.Fprintf(&b, " Complete the look with %s to add the perfect finishing touch.", item.Name)
		default:
			fmt.Fprintf(&b, " Add %s to enhance the overall style.", item.Name)
		}
	}

	b.WriteString(closingSentence(occasion))

	return b.String()
}

func closingSentence(occasion string) string {
	occasion = strings.ToLower(occasion)
	switch {
	case strings.Contains(occasion, "office") || strings.Contains(occasion, "formal"):
		return " This combination works perfectly for professional settings."
	case strings.Contains(occasion, "party") || strings.Contains(occasion, "festive"):
		return " This ensemble is ideal for celebratory occasions."
	default:
		return " This versatile combination works for various casual occasions."
	}
}
