package models

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	Address      Address   `gorm:"embedded" json:"address"` // Embeds address fields directly
	Cart         Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders       []Order   `gorm:"foreignKey:UserID" json:"orders"`
	CreatedAt    time.Time `json:"created_at"`
}

// Address model embedded in User
type Address struct {
	ShippingAddress string `json:"shipping_address"`
	City            string `json:"city"`
	PostalCode      string `json:"postal_code"`
	Country         string `json:"country"`
}

// ProfileComplete reports whether the user can check out. Orders carry a
// shipping address snapshot, so name and address must be filled in first.
func (u User) ProfileComplete() bool {
	return u.FullName != "" && u.Address.ShippingAddress != ""
}
