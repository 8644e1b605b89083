package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by seller
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCanceled  OrderStatus = "canceled"  // Canceled before shipping
)

type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderRef        string          `gorm:"uniqueIndex" json:"order_ref"`
	UserID          string          `gorm:"not null;index" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2)" json:"total_amount"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod   string          `json:"payment_method"` // free-text label, e.g. "CreditCard"
	ShippingAddress string          `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem is a snapshot taken at settlement time. ProductName and UnitPrice
// are copied from the product so later edits never alter historical orders.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"index" json:"order_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)" json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// Cancelable reports whether the owning user may still cancel the order.
// Every status other than pending is terminal from the user's perspective.
func (o Order) Cancelable() bool {
	return o.Status == OrderStatusPending
}
