package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hammadi-dev/cartly-api/models"
	"github.com/hammadi-dev/cartly-api/validators"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	StockQuantity int             `json:"stock_quantity"`
	SKU           string          `json:"sku"`
	Brand         string          `json:"brand"`
	CategoryID    uint            `json:"category_id"`
}

func validateProductInput(input ProductInput) error {
	if err := validators.ValidateString("name", input.Name, 1, 200); err != nil {
		return err
	}
	if err := validators.ValidatePrice(input.Price); err != nil {
		return err
	}
	return validators.ValidateStock(input.StockQuantity)
}

// CreateProduct creates a new product. Admin only.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := validateProductInput(input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.CategoryID != 0 {
			var category models.Category
			if err := db.First(&category, input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		}

		product := models.Product{
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			ImageURL:      input.ImageURL,
			StockQuantity: input.StockQuantity,
			SKU:           input.SKU,
			Brand:         input.Brand,
			CategoryID:    input.CategoryID,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
