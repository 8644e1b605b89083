package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hammadi-dev/cartly-api/models"
	"github.com/hammadi-dev/cartly-api/validators"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductUpdateInput struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	ImageURL      *string          `json:"image_url"`
	StockQuantity *int             `json:"stock_quantity"`
	SKU           *string          `json:"sku"`
	Brand         *string          `json:"brand"`
	CategoryID    *uint            `json:"category_id"`
}

// UpdateProduct applies a partial update to an existing product. Admin only.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			if err := validators.ValidateString("name", *input.Name, 1, 200); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if err := validators.ValidatePrice(*input.Price); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.Price = *input.Price
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.StockQuantity != nil {
			if err := validators.ValidateStock(*input.StockQuantity); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.StockQuantity = *input.StockQuantity
		}
		if input.SKU != nil {
			product.SKU = *input.SKU
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			product.CategoryID = *input.CategoryID
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
