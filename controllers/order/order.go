package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hammadi-dev/cartly-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request structs --------

type PlaceOrderRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"` // free-text label, e.g. "CreditCard"
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Errors --------

var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrProfileIncomplete = errors.New("profile must be completed before checkout")
	ErrNotCancelable     = errors.New("only pending orders can be canceled")
)

// StockExceededError rejects a whole checkout, naming the offending product.
type StockExceededError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e StockExceededError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCanceled):
		return models.OrderStatusCanceled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Generate unique order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// settlementLine pairs a cart item with its product row as re-read at
// settlement time, not as seen when the cart was filled.
type settlementLine struct {
	Item    models.CartItem
	Product models.Product
}

// buildOrder validates every line against current stock and produces the
// denormalized order items plus the total. Either all lines pass or none are
// built; the first short line rejects the whole order.
func buildOrder(lines []settlementLine) ([]models.OrderItem, decimal.Decimal, error) {
	for _, line := range lines {
		if line.Item.Quantity > line.Product.StockQuantity {
			return nil, decimal.Zero, StockExceededError{
				ProductName: line.Product.Name,
				Requested:   line.Item.Quantity,
				Available:   line.Product.StockQuantity,
			}
		}
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			UnitPrice:   line.Product.Price,
			Quantity:    line.Item.Quantity,
		})
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Item.Quantity))))
	}
	return items, total, nil
}

// -------- Core logic --------

// PlaceOrder settles the user's cart into an order. Product rows are locked
// and re-read inside the transaction, so two simultaneous checkouts on the
// same product serialize and stock can never go negative. Order creation,
// stock decrement and cart deletion commit as one unit.
func PlaceOrder(db *gorm.DB, userID, paymentMethod string) (models.Order, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return models.Order{}, err
	}
	if !user.ProfileComplete() {
		return models.Order{}, ErrProfileIncomplete
	}

	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.Order{}, ErrCartEmpty
		}
		return models.Order{}, err
	}
	if len(cart.Items) == 0 {
		return models.Order{}, ErrCartEmpty
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		lines := make([]settlementLine, 0, len(cart.Items))
		for _, item := range cart.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}
			lines = append(lines, settlementLine{Item: item, Product: product})
		}

		orderItems, total, err := buildOrder(lines)
		if err != nil {
			return err
		}

		for _, line := range lines {
			line.Product.StockQuantity -= line.Item.Quantity
			if err := tx.Save(&line.Product).Error; err != nil {
				return err
			}
		}

		order = models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        userID,
			Items:         orderItems,
			TotalAmount:   total,
			Status:        models.OrderStatusPending,
			PaymentMethod: paymentMethod,
			ShippingAddress: fmt.Sprintf("%s, %s, %s, %s",
				user.Address.ShippingAddress, user.Address.City,
				user.Address.PostalCode, user.Address.Country),
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	broadcastNewOrder(order)
	return order, nil
}

// CancelOrder moves a pending order to canceled and puts the ordered
// quantities back into stock, all in one transaction. Products deleted since
// the order was placed are skipped.
func CancelOrder(db *gorm.DB, userID string, orderID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			Where("id = ? AND user_id = ?", orderID, userID).
			First(&order).Error; err != nil {
			return err
		}

		if !order.Cancelable() {
			return ErrNotCancelable
		}

		for _, item := range order.Items {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		return tx.Model(&order).Update("status", models.OrderStatusCanceled).Error
	})
}

// -------- Handlers --------

// POST /user/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req.PaymentMethod)
		if err != nil {
			var stockErr StockExceededError
			switch {
			case errors.As(err, &stockErr):
				c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error()})
			case errors.Is(err, ErrCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			case errors.Is(err, ErrProfileIncomplete):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Please complete your profile before checkout"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.
			Preload("Items").
			Where("(id = ? OR order_ref = ?) AND user_id = ?", orderID, orderID, userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /user/orders/:orderID/cancel
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orderID := c.Param("orderID")

		if err := CancelOrder(db, userID, orderID); err != nil {
			switch {
			case errors.Is(err, ErrNotCancelable):
				c.JSON(http.StatusConflict, gin.H{"error": "Only pending orders can be canceled"})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order canceled successfully"})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Order{}).
			Preload("User").
			Preload("Items")

		if status := c.Query("status"); status != "" {
			mapped, err := mapOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", mapped)
		}
		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.
				Joins("JOIN users ON users.id = orders.user_id").
				Where("CAST(orders.id AS TEXT) ILIKE ? OR users.full_name ILIKE ?", likePattern, likePattern)
		}

		var orders []models.Order
		if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
