// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CatalogHandler handles catalog endpoints
type CatalogHandler struct {
	store *catalog.Store
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// GetCatalog handles GET /catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	sections := make([]gin.H, 0, len(catalog.Categories()))
	for _, category := range catalog.Categories() {
		products := make([]catalog.Product, 0)
		for p := range h.store.ByCategory(category) {
			products = append(products, p)
		}
		sections = append(sections, gin.H{
			"category": category,
			"label":    catalog.CategoryLabel(category),
			"products": products,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog retrieved successfully",
		"data":    sections,
	})
}

// GetCategory handles GET /catalog/categories/:category. Legacy aliases
// resolve to their canonical category; anything else is looked up as-is.
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category := catalog.ResolveAlias(c.Param("category"))

	// An unknown category is an empty list, never an error.
	products := make([]catalog.Product, 0)
	for p := range h.store.ByCategory(category) {
		products = append(products, p)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category retrieved successfully",
		"data": gin.H{
			"category": category,
			"label":    catalog.CategoryLabel(category),
			"products": products,
		},
	})
}

// GetProduct handles GET /catalog/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, ok := h.store.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    p,
	})
}

// Reload handles POST /catalog/reload. A failed reload keeps serving the
// previous catalog.
func (h *CatalogHandler) Reload(c *gin.Context) {
	if err := h.store.Load(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Catalog reload failed, previous catalog kept",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog reloaded successfully",
		"data": gin.H{
			"products": h.store.Size(),
		},
	})
}
