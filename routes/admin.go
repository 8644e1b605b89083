package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/hammadi-dev/cartly-api/controllers/admin"
	orderControllers "github.com/hammadi-dev/cartly-api/controllers/order"
	productcontroller "github.com/hammadi-dev/cartly-api/controllers/product"
	userControllers "github.com/hammadi-dev/cartly-api/controllers/user"
	"github.com/hammadi-dev/cartly-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT with
// the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Dashboard & User Management ───────────
		adminGroup.GET("/dashboard", adminController.GetDashboardStats(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		}
	}
}
