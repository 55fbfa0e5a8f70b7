// internal/domain/view/renderer.go

// Package view builds render descriptions from store state. Rendering is a
// pure function: the same catalog, cart, and dialog state always produce the
// same page, and nothing here performs I/O.
package view

import (
	"iter"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/ui"
	"github.com/your-org/storefront-backend/internal/pkg/money"
)

// CatalogSource is the read-only slice of the catalog store the renderer
// consumes.
type CatalogSource interface {
	ByCategory(category string) iter.Seq[catalog.Product]
}

// Page is the full render description for the storefront.
type Page struct {
	Sections []CategorySection `json:"sections"`
	Badge    Badge             `json:"badge"`
	Cart     CartView          `json:"cart"`
	Dialog   DialogView        `json:"dialog"`
}

// CategorySection is one category grid.
type CategorySection struct {
	Category string        `json:"category"`
	Label    string        `json:"label"`
	Cards    []ProductCard `json:"cards"`
	Empty    bool          `json:"empty"`
}

// ProductCard is one product tile in a category grid.
type ProductCard struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	PriceLabel string `json:"price_label"`
}

// Badge is the cart badge next to the cart control.
type Badge struct {
	Count   int  `json:"count"`
	Visible bool `json:"visible"`
}

// CartView is the rendered cart line list.
type CartView struct {
	Rows       []CartRow `json:"rows"`
	TotalLabel string    `json:"total_label"`
	Empty      bool      `json:"empty"`
}

// CartRow is one rendered cart line.
type CartRow struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	Quantity      int    `json:"quantity"`
	PriceLabel    string `json:"price_label"`
	SubtotalLabel string `json:"subtotal_label"`
}

// DialogView describes the active dialog surface, if any.
type DialogView struct {
	State   ui.State       `json:"state"`
	Product *ProductDetail `json:"product,omitempty"`
}

// ProductDetail is the product dialog content.
type ProductDetail struct {
	ProductID  string      `json:"product_id"`
	Name       string      `json:"name"`
	Image      string      `json:"image"`
	PriceLabel string      `json:"price_label"`
	Quantity   int         `json:"quantity"`
	TotalLabel string      `json:"total_label"`
	Ack        ui.AckState `json:"ack"`
}

// RenderPage builds the page description for the current state.
func RenderPage(src CatalogSource, c *cart.Cart, snap ui.Snapshot) Page {
	return Page{
		Sections: renderSections(src),
		Badge:    renderBadge(c),
		Cart:     RenderCart(c),
		Dialog:   renderDialog(snap),
	}
}

// RenderCart builds the cart line list and total.
func RenderCart(c *cart.Cart) CartView {
	v := CartView{
		TotalLabel: money.FormatFCFA(c.Total()),
		Empty:      c.IsEmpty(),
	}
	for _, line := range c.Lines {
		v.Rows = append(v.Rows, CartRow{
			ProductID:     line.ProductID,
			Name:          line.Name,
			Image:         line.Image,
			Quantity:      line.Quantity,
			PriceLabel:    money.FormatFCFA(line.Price),
			SubtotalLabel: money.FormatFCFA(line.Subtotal()),
		})
	}
	return v
}

func renderSections(src CatalogSource) []CategorySection {
	var sections []CategorySection
	for _, category := range catalog.Categories() {
		section := CategorySection{
			Category: category,
			Label:    catalog.CategoryLabel(category),
		}
		for p := range src.ByCategory(category) {
			section.Cards = append(section.Cards, ProductCard{
				ProductID:  p.ID,
				Name:       p.Name,
				Image:      p.Image,
				PriceLabel: money.FormatFCFA(p.Price),
			})
		}
		section.Empty = len(section.Cards) == 0
		sections = append(sections, section)
	}
	return sections
}

func renderBadge(c *cart.Cart) Badge {
	count := c.TotalQuantity()
	return Badge{Count: count, Visible: count > 0}
}

func renderDialog(snap ui.Snapshot) DialogView {
	v := DialogView{State: snap.State}
	if snap.State == ui.StateProductOpen && snap.Product != nil {
		v.Product = &ProductDetail{
			ProductID:  snap.Product.ID,
			Name:       snap.Product.Name,
			Image:      snap.Product.Image,
			PriceLabel: money.FormatFCFA(snap.Product.Price),
			Quantity:   snap.Quantity,
			TotalLabel: money.FormatFCFA(snap.RunningTotal),
			Ack:        snap.Ack,
		}
	}
	return v
}
