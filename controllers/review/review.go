package reviewControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hammadi-dev/cartly-api/models"
	"github.com/hammadi-dev/cartly-api/validators"
	"gorm.io/gorm"
)

type ReviewInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// POST /user/reviews
func AddReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := validators.ValidateRating(input.Rating); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		review := models.Review{
			ProductID: input.ProductID,
			UserID:    userID,
			Rating:    input.Rating,
			Comment:   input.Comment,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// GET /products/:id/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")

		var reviews []models.Review
		if err := db.
			Where("product_id = ?", productID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
