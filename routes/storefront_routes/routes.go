package storefront_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/controllers/storefront/cart_controller"
	"github.com/Joaovitor770/cnx-0110/controllers/storefront/catalog_controller"
	"github.com/Joaovitor770/cnx-0110/controllers/storefront/checkout_controller"
	"github.com/Joaovitor770/cnx-0110/middleware"
)

// Setup registers the public storefront surface: catalog browsing,
// the session cart and checkout.
func Setup(rg *gin.RouterGroup) {
	// Catalog reads come from in-memory mirrors; a generous limit still
	// shields the envelope building
	browse := rg.Group("", middleware.RateLimiter(300, time.Minute))
	{
		browse.GET("/products", catalog_controller.GetStorefrontProducts)
		browse.GET("/products/:slug", catalog_controller.GetStorefrontProductBySlug)
		browse.GET("/categories", catalog_controller.GetStorefrontCategories)
		browse.GET("/collections", catalog_controller.GetStorefrontCollections)
		browse.GET("/collections/:slug", catalog_controller.GetStorefrontCollectionBySlug)
		browse.GET("/settings", catalog_controller.GetStorefrontSettings)
	}

	cartGroup := rg.Group("/cart", middleware.RateLimiter(120, time.Minute))
	{
		cartGroup.GET("", cart_controller.GetCart)
		cartGroup.DELETE("", cart_controller.ClearCart)
		cartGroup.POST("/items", cart_controller.AddItem)
		cartGroup.PATCH("/items", cart_controller.UpdateItem)
		cartGroup.DELETE("/items", cart_controller.RemoveItem)
	}

	rg.POST("/checkout", middleware.RateLimiter(20, time.Minute), checkout_controller.SubmitCheckout)
}
