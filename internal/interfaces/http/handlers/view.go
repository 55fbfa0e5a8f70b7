// internal/interfaces/http/handlers/view.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/ui"
	"github.com/your-org/storefront-backend/internal/domain/view"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// ViewHandler renders the whole page description for a session.
type ViewHandler struct {
	catalog     *catalog.Store
	cartService *cart.Service
	dialogs     *ui.Manager
}

// NewViewHandler creates a new view handler
func NewViewHandler(catalogStore *catalog.Store, cartService *cart.Service, dialogs *ui.Manager) *ViewHandler {
	return &ViewHandler{
		catalog:     catalogStore,
		cartService: cartService,
		dialogs:     dialogs,
	}
}

// GetPage handles GET /view. The cart is re-read on every render so the
// page is never stale.
func (h *ViewHandler) GetPage(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	currentCart, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to render page",
		})
		return
	}

	snap := h.dialogs.Get(sessionID).Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"message": "Page rendered successfully",
		"data":    view.RenderPage(h.catalog, currentCart, snap),
	})
}
