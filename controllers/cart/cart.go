package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hammadi-dev/cartly-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type QuantityInput struct {
	Quantity int `json:"quantity"`
}

// CartLineView resolves a cart item against the current product row. Prices
// here track product edits; they are only frozen at settlement.
type CartLineView struct {
	ItemID      uint            `json:"item_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type CartView struct {
	Items []CartLineView  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, CartView{Items: []CartLineView{}, Total: decimal.Zero})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		view, err := resolveCart(db, cart.Items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func resolveCart(db *gorm.DB, items []models.CartItem) (CartView, error) {
	view := CartView{Items: []CartLineView{}, Total: decimal.Zero}
	for _, item := range items {
		var product models.Product
		if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue // product deleted since it was added
			}
			return CartView{}, err
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, CartLineView{
			ItemID:      item.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			LineTotal:   lineTotal,
		})
		view.Total = view.Total.Add(lineTotal)
	}
	return view, nil
}

// POST /user/cart
//
// Upserts a line: quantities add up when the product is already in the cart.
// The resulting quantity may never exceed the product's current stock.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

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

		// Cart is created lazily on first add
		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
				return
			}
			cart = models.Cart{UserID: userID}
			if err := db.Create(&cart).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
				return
			}
		}

		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
				return
			}
			if input.Quantity > product.StockQuantity {
				c.JSON(http.StatusConflict, gin.H{"error": "Requested quantity exceeds available stock"})
				return
			}
			newItem := models.CartItem{
				CartID:    cart.CartID,
				ProductID: product.ID,
				Quantity:  input.Quantity,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&newItem).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			c.JSON(http.StatusCreated, newItem)
			return
		}

		if item.Quantity+input.Quantity > product.StockQuantity {
			c.JSON(http.StatusConflict, gin.H{"error": "Updated quantity exceeds available stock"})
			return
		}
		item.Quantity += input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// PUT /user/cart/:item_id
//
// Sets the line quantity. A quantity below 1 deletes the line instead of
// storing a zero.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		itemID := c.Param("item_id")

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Joins("JOIN carts ON carts.cart_id = cart_items.cart_id").
			Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
			First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if input.Quantity < 1 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if input.Quantity > product.StockQuantity {
			c.JSON(http.StatusConflict, gin.H{"error": "Requested quantity exceeds available stock"})
			return
		}

		item.Quantity = input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:item_id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		itemID := c.Param("item_id")

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND id = ?", cart.CartID, itemID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
