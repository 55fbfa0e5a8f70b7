// internal/domain/view/renderer_test.go
package view

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/ui"
)

type staticCatalog map[string][]catalog.Product

func (s staticCatalog) ByCategory(category string) iter.Seq[catalog.Product] {
	return func(yield func(catalog.Product) bool) {
		for _, p := range s[category] {
			if !yield(p) {
				return
			}
		}
	}
}

var fixtureCatalog = staticCatalog{
	catalog.CategoryCorporel: {
		{ID: "corporel-1", Name: "Musc Tahara", Price: 1000, Image: "/img/musc.jpg", Category: catalog.CategoryCorporel},
	},
	catalog.CategoryMaison: {
		{ID: "maison-1", Name: "Encens Royal", Price: 3500, Image: "/img/encens.jpg", Category: catalog.CategoryMaison},
	},
}

func fixtureCart() *cart.Cart {
	return &cart.Cart{Lines: []cart.Line{
		{ProductID: "corporel-1", Name: "Musc Tahara", Price: 1000, Image: "/img/musc.jpg", Quantity: 2},
		{ProductID: "maison-1", Name: "Encens Royal", Price: 3500, Image: "/img/encens.jpg", Quantity: 1},
	}}
}

func TestRenderPage(t *testing.T) {
	snap := ui.Snapshot{State: ui.StateClosed, Ack: ui.AckIdle}
	page := RenderPage(fixtureCatalog, fixtureCart(), snap)

	t.Run("sections follow canonical category order", func(t *testing.T) {
		require.Len(t, page.Sections, 3)
		assert.Equal(t, catalog.CategoryCorporel, page.Sections[0].Category)
		assert.Equal(t, catalog.CategoryMaison, page.Sections[1].Category)
		assert.Equal(t, catalog.CategoryVetement, page.Sections[2].Category)

		require.Len(t, page.Sections[0].Cards, 1)
		assert.Equal(t, "1 000 FCFA", page.Sections[0].Cards[0].PriceLabel)

		assert.True(t, page.Sections[2].Empty, "category with no products renders an empty placeholder")
	})

	t.Run("badge counts total quantity", func(t *testing.T) {
		assert.Equal(t, 3, page.Badge.Count)
		assert.True(t, page.Badge.Visible)
	})

	t.Run("cart rows carry exact subtotals", func(t *testing.T) {
		require.Len(t, page.Cart.Rows, 2)
		assert.Equal(t, "2 000 FCFA", page.Cart.Rows[0].SubtotalLabel)
		assert.Equal(t, "4 500 FCFA", page.Cart.TotalLabel)
		assert.False(t, page.Cart.Empty)
	})

	t.Run("closed dialog has no product detail", func(t *testing.T) {
		assert.Equal(t, ui.StateClosed, page.Dialog.State)
		assert.Nil(t, page.Dialog.Product)
	})
}

func TestRenderPage_ProductDialog(t *testing.T) {
	snap := ui.Snapshot{
		State:        ui.StateProductOpen,
		Product:      &catalog.Product{ID: "maison-1", Name: "Encens Royal", Price: 3500, Image: "/img/encens.jpg"},
		Quantity:     3,
		RunningTotal: 10500,
		Ack:          ui.AckFlashing,
	}

	page := RenderPage(fixtureCatalog, &cart.Cart{}, snap)

	require.NotNil(t, page.Dialog.Product)
	assert.Equal(t, "3 500 FCFA", page.Dialog.Product.PriceLabel)
	assert.Equal(t, 3, page.Dialog.Product.Quantity)
	assert.Equal(t, "10 500 FCFA", page.Dialog.Product.TotalLabel)
	assert.Equal(t, ui.AckFlashing, page.Dialog.Product.Ack)
}

func TestRenderPage_Deterministic(t *testing.T) {
	snap := ui.Snapshot{State: ui.StateCartOpen, Ack: ui.AckIdle}

	first := RenderPage(fixtureCatalog, fixtureCart(), snap)
	second := RenderPage(fixtureCatalog, fixtureCart(), snap)
	assert.Equal(t, first, second, "same state must render the same page")
}

func TestRenderCart_Empty(t *testing.T) {
	v := RenderCart(&cart.Cart{})
	assert.True(t, v.Empty)
	assert.Empty(t, v.Rows)
	assert.Equal(t, "0 FCFA", v.TotalLabel)
}
