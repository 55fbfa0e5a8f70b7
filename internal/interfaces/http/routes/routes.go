// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/ui"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// Services bundles the domain services the routes dispatch into.
type Services struct {
	Catalog  *catalog.Store
	Cart     *cart.Service
	Dialogs  *ui.Manager
	Checkout *checkout.Service
}

// SetupRoutes wires all storefront routes onto the API group
func SetupRoutes(rg *gin.RouterGroup, svcs *Services) {
	catalogHandler := handlers.NewCatalogHandler(svcs.Catalog)
	cartHandler := handlers.NewCartHandler(svcs.Cart, svcs.Catalog)
	uiHandler := handlers.NewUIHandler(svcs.Dialogs, svcs.Catalog)
	checkoutHandler := handlers.NewCheckoutHandler(svcs.Checkout)
	viewHandler := handlers.NewViewHandler(svcs.Catalog, svcs.Cart, svcs.Dialogs)

	// Catalog routes are session-free and read-only apart from reload.
	catalogRoutes := rg.Group("/catalog")
	{
		catalogRoutes.GET("", catalogHandler.GetCatalog)
		catalogRoutes.GET("/categories/:category", catalogHandler.GetCategory)
		catalogRoutes.GET("/products/:id", catalogHandler.GetProduct)
		catalogRoutes.POST("/reload", catalogHandler.Reload)
	}

	// Everything below is keyed by the visitor session.
	session := rg.Group("")
	session.Use(middleware.Session())
	{
		cartRoutes := session.Group("/cart")
		{
			cartRoutes.GET("", cartHandler.GetCart)
			cartRoutes.GET("/count", cartHandler.GetCartCount)
			cartRoutes.POST("/items", cartHandler.AddToCart)
			cartRoutes.DELETE("/items/:id", cartHandler.RemoveFromCart)
			cartRoutes.DELETE("", cartHandler.ClearCart)
		}

		uiRoutes := session.Group("/ui")
		{
			uiRoutes.GET("", uiHandler.GetState)
			uiRoutes.POST("/product/:id", uiHandler.OpenProduct)
			uiRoutes.POST("/product/quantity/increment", uiHandler.IncrementQuantity)
			uiRoutes.POST("/product/quantity/decrement", uiHandler.DecrementQuantity)
			uiRoutes.POST("/product/confirm", uiHandler.ConfirmAddToCart)
			uiRoutes.POST("/product/buy-now", uiHandler.BuyNow)
			uiRoutes.POST("/cart", uiHandler.OpenCart)
			uiRoutes.POST("/checkout", uiHandler.ProceedToCheckout)
			uiRoutes.DELETE("", uiHandler.Close)
		}

		session.GET("/view", viewHandler.GetPage)
		session.POST("/checkout", checkoutHandler.Submit)
	}
}
