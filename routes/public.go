package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/hammadi-dev/cartly-api/controllers/cart"
	productControllers "github.com/hammadi-dev/cartly-api/controllers/product"
	reviewControllers "github.com/hammadi-dev/cartly-api/controllers/review"
	"github.com/hammadi-dev/cartly-api/session"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the catalog and the session-backed guest cart.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, sessions *session.Store) {
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/products/:id/reviews", reviewControllers.GetProductReviews(db))
	r.GET("/categories", productControllers.GetAllCategories(db))

	guestCart := r.Group("/guest/cart")
	{
		guestCart.GET("", cartControllers.GetGuestCart(db, sessions))
		guestCart.POST("", cartControllers.AddToGuestCart(db, sessions))
		guestCart.PUT("/:product_id", cartControllers.UpdateGuestCartLine(db, sessions))
		guestCart.DELETE("/:product_id", cartControllers.RemoveGuestCartLine(sessions))
		guestCart.DELETE("", cartControllers.ClearGuestCart(sessions))
	}
}
