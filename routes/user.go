package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/hammadi-dev/cartly-api/controllers/cart"
	orderControllers "github.com/hammadi-dev/cartly-api/controllers/order"
	reviewControllers "github.com/hammadi-dev/cartly-api/controllers/review"
	userControllers "github.com/hammadi-dev/cartly-api/controllers/user"
	"github.com/hammadi-dev/cartly-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(db))
			cartGroup.POST("", cartControllers.AddToCart(db))
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:item_id", cartControllers.RemoveCartItem(db))
			cartGroup.DELETE("", cartControllers.ClearUserCart(db))
		}

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("", orderControllers.PlaceOrderHandler(db))
			orderGroup.GET("", orderControllers.GetUserOrdersHandler(db))
			orderGroup.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderGroup.POST("/:orderID/cancel", orderControllers.CancelOrderHandler(db))
		}

		// ──────────────── Reviews ────────────────
		userGroup.POST("/reviews", reviewControllers.AddReview(db))
	}
}
