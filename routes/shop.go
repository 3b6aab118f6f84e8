package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/junaidrashid-git/bakery-api/controllers/cart"
	checkoutControllers "github.com/junaidrashid-git/bakery-api/controllers/checkout"
	orderControllers "github.com/junaidrashid-git/bakery-api/controllers/order"
	"github.com/junaidrashid-git/bakery-api/middleware"
	"github.com/junaidrashid-git/bakery-api/models"
	"gorm.io/gorm"
)

// SetupShopRoutes registers the "/cart/*", "/checkout/*" and "/order/*"
// endpoints. Every route admits both roles; handlers narrow non-admin
// callers to rows they own.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireAuth)
	{
		cartGroup.POST("/", cartControllers.CreateCart(db))      // POST /cart
		cartGroup.GET("/", cartControllers.GetCarts(db))         // GET /cart
		cartGroup.GET("/:id", cartControllers.GetCartByID(db))   // GET /cart/:id
		cartGroup.PATCH("/:id", cartControllers.UpdateCart(db))  // PATCH /cart/:id
		cartGroup.DELETE("/:id", cartControllers.DeleteCart(db)) // DELETE /cart/:id
	}

	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.RequireAuth)
	{
		checkoutGroup.POST("/", checkoutControllers.CreateCheckout(db))
		checkoutGroup.GET("/", checkoutControllers.GetCheckouts(db))
		checkoutGroup.GET("/:id", checkoutControllers.GetCheckoutByID(db))
		checkoutGroup.PATCH("/:id", checkoutControllers.UpdateCheckout(db))
		checkoutGroup.DELETE("/:id", checkoutControllers.DeleteCheckout(db))
	}

	orderGroup := r.Group("/order")
	orderGroup.Use(middleware.RequireAuth)
	{
		// live admin feed of incoming orders
		orderGroup.GET("/ws", middleware.RequireRoles(models.RoleAdmin), orderControllers.OrderFeedHandler)

		orderGroup.POST("/", orderControllers.CreateOrderHandler(db))
		orderGroup.GET("/", orderControllers.GetOrders(db))
		orderGroup.GET("/:id", orderControllers.GetOrderByID(db))
		orderGroup.PATCH("/:id", orderControllers.UpdateOrder(db))
		orderGroup.DELETE("/:id", orderControllers.DeleteOrder(db))
	}
}
