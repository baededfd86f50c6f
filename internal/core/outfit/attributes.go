// Package outfit implements the outfit-compatibility recommendation
// engine: attribute extraction, garment classification, compatibility
// scoring, complement selection and outfit assembly. Every function is a
// pure, deterministic computation over the supplied values, so concurrent
// calls never share state.
package outfit

import (
	"strings"

	"github.com/styleloom/outfitter/internal/core/domain"
)

// styleRules is evaluated in order, first match wins.
var styleRules = []struct {
	tag      domain.StyleTag
	keywords []string
}{
	{domain.StyleEthnic, []string{"ethnic", "traditional", "kurti"}},
	{domain.StyleWestern, []string{"western", "modern", "contemporary"}},
	{domain.StyleCasual, []string{"casual", "everyday"}},
	{domain.StyleFormal, []string{"formal", "office", "professional"}},
	{domain.StyleParty, []string{"party", "festive", "celebration"}},
}

// colorPalette is scanned in order, the first substring match wins.
// "grey" and "gray" are distinct palette entries on purpose: the tag keeps
// the spelling that actually occurred in the text.
var colorPalette = []string{
	"red", "blue", "green", "yellow", "black", "white",
	"pink", "purple", "orange", "brown", "grey", "gray",
}

// Style derives the coarse aesthetic tag from the product's name and
// description, defaulting to StyleVersatile when no keyword occurs.
func Style(p domain.Product) domain.StyleTag {
	text := p.SearchText()
	for _, rule := range styleRules {
		if containsAny(text, rule.keywords) {
			return rule.tag
		}
	}
	return domain.StyleVersatile
}

// Color returns the first palette color occurring as a substring of the
// product text, or ColorNone. Substring matching is a known heuristic
// limit: a palette word embedded in an unrelated word still matches.
func Color(p domain.Product) domain.ColorTag {
	text := p.SearchText()
	for _, color := range colorPalette {
		if strings.Contains(text, color) {
			return domain.ColorTag(color)
		}
	}
	return domain.ColorNone
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
