package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	ImageURL      string          `json:"image_url"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	SKU           string          `gorm:"uniqueIndex" json:"sku"`
	Brand         string          `json:"brand"`
	CategoryID    uint            `gorm:"index" json:"category_id"`
	Reviews       []Review        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}
