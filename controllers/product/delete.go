package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hammadi-dev/cartly-api/models"
	"gorm.io/gorm"
)

// DeleteProduct soft-deletes a product. Historical orders keep their
// denormalized snapshot; carts referencing it drop the line on next view.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
