// internal/interfaces/http/handlers/ui.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/ui"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// UIHandler routes dialog intents into the session's controller.
type UIHandler struct {
	dialogs *ui.Manager
	catalog *catalog.Store
}

// NewUIHandler creates a new dialog handler
func NewUIHandler(dialogs *ui.Manager, catalogStore *catalog.Store) *UIHandler {
	return &UIHandler{
		dialogs: dialogs,
		catalog: catalogStore,
	}
}

func (h *UIHandler) controller(c *gin.Context) *ui.Controller {
	return h.dialogs.Get(middleware.GetSessionID(c))
}

// OpenProduct handles POST /ui/product/:id
func (h *UIHandler) OpenProduct(c *gin.Context) {
	product, ok := h.catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	snap := h.controller(c).OpenProduct(product)
	c.JSON(http.StatusOK, gin.H{
		"message": "Product dialog opened",
		"data":    snap,
	})
}

// IncrementQuantity handles POST /ui/product/quantity/increment
func (h *UIHandler) IncrementQuantity(c *gin.Context) {
	snap, err := h.controller(c).IncrementQuantity()
	if err != nil {
		h.dialogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quantity updated",
		"data":    snap,
	})
}

// DecrementQuantity handles POST /ui/product/quantity/decrement
func (h *UIHandler) DecrementQuantity(c *gin.Context) {
	snap, err := h.controller(c).DecrementQuantity()
	if err != nil {
		h.dialogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quantity updated",
		"data":    snap,
	})
}

// ConfirmAddToCart handles POST /ui/product/confirm
func (h *UIHandler) ConfirmAddToCart(c *gin.Context) {
	snap, err := h.controller(c).ConfirmAddToCart(c.Request.Context())
	if err != nil {
		h.dialogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data":    snap,
	})
}

// BuyNow handles POST /ui/product/buy-now
func (h *UIHandler) BuyNow(c *gin.Context) {
	snap, err := h.controller(c).BuyNow(c.Request.Context())
	if err != nil {
		h.dialogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added, checkout opened",
		"data":    snap,
	})
}

// OpenCart handles POST /ui/cart
func (h *UIHandler) OpenCart(c *gin.Context) {
	snap := h.controller(c).OpenCart()
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart dialog opened",
		"data":    snap,
	})
}

// ProceedToCheckout handles POST /ui/checkout
func (h *UIHandler) ProceedToCheckout(c *gin.Context) {
	snap, err := h.controller(c).ProceedToCheckout()
	if err != nil {
		h.dialogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout dialog opened",
		"data":    snap,
	})
}

// Close handles DELETE /ui. Close control, backdrop click, and Escape all
// land here.
func (h *UIHandler) Close(c *gin.Context) {
	snap := h.controller(c).Close()
	c.JSON(http.StatusOK, gin.H{
		"message": "Dialog closed",
		"data":    snap,
	})
}

// GetState handles GET /ui
func (h *UIHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Dialog state retrieved successfully",
		"data":    h.controller(c).Snapshot(),
	})
}

func (h *UIHandler) dialogError(c *gin.Context, err error) {
	if errors.Is(err, ui.ErrNoProductOpen) || errors.Is(err, ui.ErrCartNotOpen) {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
	})
}
