package outfit

import "strings"

var outfitKeywords = []string{
	"outfit", "complete look", "full set", "ensemble",
	"coordination", "matching set", "style set", "look book",
	"dress me", "what to wear", "complete style", "full outfit",
	"coordinated look", "styling", "wardrobe", "look for",
}

var occasionKeywords = []string{
	"office", "work", "casual", "party", "wedding", "date",
	"formal", "business", "vacation", "travel", "beach",
	"dinner", "brunch", "meeting", "interview", "festive",
}

var outfitPhrases = []string{
	"what should i wear",
	"how to dress",
	"style for",
	"look for",
	"going to",
}

// DetectIntent reports whether a search query asks for a complete outfit
// rather than a single item, so the caller can route it to the
// natural-language search path.
func DetectIntent(query string) bool {
	q := strings.ToLower(query)

	if containsAny(q, outfitKeywords) {
		return true
	}
	return containsAny(q, occasionKeywords) && containsAny(q, outfitPhrases)
}
