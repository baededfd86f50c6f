package outfit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/styleloom/outfitter/internal/core/domain"
	"github.com/styleloom/outfitter/internal/core/outfit"
)

func TestStylingTips(t *testing.T) {
	anchor := domain.Product{ID: "A1", Name: "Red Cotton Kurti", Price: 899}
	top := domain.Product{ID: "T1", Name: "Green casual top"}
	bottom := domain.Product{ID: "B1", Name: "Black Palazzo Pants"}
	shoes := domain.Product{ID: "F1", Name: "White Sneakers"}

	t.Run("OpeningUsesAnchorStyle", func(t *testing.T) {
		tips := outfit.StylingTips(anchor, nil, "")
		assert.Contains(t, tips, "Create a ethnic look with this Red Cotton Kurti.")
	})

	t.Run("VersatileStyleReadsStylish", func(t *testing.T) {
		plain := domain.Product{ID: "A2", Name: "Plain saree"}
		tips := outfit.StylingTips(plain, nil, "")
		assert.Contains(t, tips, "Create a stylish look with this Plain saree.")
	})

	t.Run("SingleComplement", func(t *testing.T) {
		tips := outfit.StylingTips(anchor, []domain.Product{bottom}, "")
		assert.Contains(t, tips, "Pair it with Black Palazzo Pants for a versatile outfit.")
		assert.NotContains(t, tips, "Complete the look")
	})

	t.Run("FirstMiddleLastPhrasing", func(t *testing.T) {
		tips := outfit.StylingTips(anchor, []domain.Product{bottom, top, shoes}, "party")
		assert.Contains(t, tips, "Pair it with Black Palazzo Pants for a party outfit.")
		assert.Contains(t, tips, "Add Green casual top to enhance the overall style.")
		assert.Contains(t, tips, "Complete the look with White Sneakers to add the perfect finishing touch.")
	})

	t.Run("OfficeClosing", func(t *testing.T) {
		tips := outfit.StylingTips(anchor, []domain.Product{bottom}, "office")
		assert.Contains(t, tips, "works perfectly for professional settings.")
	})

	t.Run("FestiveClosing", func(t *testing.T) {
		tips := outfit.StylingTips(anchor, []domain.Product{bottom}, "festive")
		assert.Contains(t, tips, "ideal for celebratory occasions.")
	})

	t.Run("GenericClosing", func(t *testing.T) {
		tips := outfit.StylingTips(anchor, []domain.Product{bottom}, "")
		assert.Contains(t, tips, "works for various casual occasions.")
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := outfit.StylingTips(anchor, []domain.Product{bottom, top}, "party")
		b := outfit.StylingTips(anchor, []domain.Product{bottom, top}, "party")
		assert.Equal(t, a, b)
	})
}

func TestDetectIntent(t *testing.T) {
	t.Run("OutfitKeyword", func(t *testing.T) {
		assert.True(t, outfit.DetectIntent("office outfit under 2000"))
		assert.True(t, outfit.DetectIntent("Complete look with sneakers"))
	})

	t.Run("OccasionWithPhrase", func(t *testing.T) {
		assert.True(t, outfit.DetectIntent("what should i wear to a wedding"))
	})

	t.Run("OccasionAlone", func(t *testing.T) {
		assert.False(t, outfit.DetectIntent("wedding saree red"))
	})

	t.Run("PlainProductQuery", func(t *testing.T) {
		assert.False(t, outfit.DetectIntent("red cotton kurti"))
	})
}
