package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hammadi-dev/cartly-api/models"
	"github.com/hammadi-dev/cartly-api/session"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Guest carts live in the session store only. The database is consulted just
// to validate products and enforce the stock bound.

// GET /guest/cart
func GetGuestCart(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}

		lines := sessions.Get(sessionID)
		view := CartView{Items: []CartLineView{}, Total: decimal.Zero}
		for _, line := range lines {
			var product models.Product
			if err := db.First(&product, "id = ?", line.ProductID).Error; err != nil {
				continue
			}
			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			view.Items = append(view.Items, CartLineView{
				ItemID:      line.ProductID, // session lines are keyed by product
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Quantity:    line.Quantity,
				LineTotal:   lineTotal,
			})
			view.Total = view.Total.Add(lineTotal)
		}
		c.JSON(http.StatusOK, view)
	}
}

// POST /guest/cart
func AddToGuestCart(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusNotFound
				errMsg = "Product not found"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		lines := sessions.Get(sessionID)
		updated := false
		for i := range lines {
			if lines[i].ProductID == input.ProductID {
				if lines[i].Quantity+input.Quantity > product.StockQuantity {
					c.JSON(http.StatusConflict, gin.H{"error": "Updated quantity exceeds available stock"})
					return
				}
				lines[i].Quantity += input.Quantity
				updated = true
				break
			}
		}
		if !updated {
			if input.Quantity > product.StockQuantity {
				c.JSON(http.StatusConflict, gin.H{"error": "Requested quantity exceeds available stock"})
				return
			}
			lines = append(lines, session.Line{ProductID: input.ProductID, Quantity: input.Quantity})
		}

		sessions.Set(sessionID, lines)
		c.JSON(http.StatusOK, gin.H{"items": lines})
	}
}

// PUT /guest/cart/:product_id
func UpdateGuestCartLine(db *gorm.DB, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		lines := sessions.Get(sessionID)
		idx := -1
		for i := range lines {
			if lines[i].ProductID == uint(productID) {
				idx = i
				break
			}
		}
		if idx < 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if input.Quantity < 1 {
			lines = append(lines[:idx], lines[idx+1:]...)
			sessions.Set(sessionID, lines)
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", uint(productID)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if input.Quantity > product.StockQuantity {
			c.JSON(http.StatusConflict, gin.H{"error": "Requested quantity exceeds available stock"})
			return
		}

		lines[idx].Quantity = input.Quantity
		sessions.Set(sessionID, lines)
		c.JSON(http.StatusOK, gin.H{"items": lines})
	}
}

// DELETE /guest/cart/:product_id
func RemoveGuestCartLine(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		lines := sessions.Get(sessionID)
		for i := range lines {
			if lines[i].ProductID == uint(productID) {
				lines = append(lines[:i], lines[i+1:]...)
				sessions.Set(sessionID, lines)
				c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
	}
}

// DELETE /guest/cart
func ClearGuestCart(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
			return
		}
		sessions.Remove(sessionID)
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart cleared"})
	}
}
