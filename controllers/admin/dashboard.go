package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hammadi-dev/cartly-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const lowStockThreshold = 10

type DashboardStats struct {
	TotalOrders      int64           `json:"total_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	LowStockProducts int64           `json:"low_stock_products"`
	RecentOrders     []models.Order  `json:"recent_orders"`
}

// GET /admin/dashboard
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stats DashboardStats

		if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		var revenue decimal.NullDecimal
		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCanceled).
			Select("SUM(total_amount)").
			Scan(&revenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		stats.TotalRevenue = decimal.Zero
		if revenue.Valid {
			stats.TotalRevenue = revenue.Decimal
		}

		if err := db.Model(&models.Product{}).
			Where("stock_quantity < ?", lowStockThreshold).
			Count(&stats.LowStockProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		if err := db.
			Preload("User").
			Order("created_at DESC").
			Limit(5).
			Find(&stats.RecentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
