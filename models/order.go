package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is the durable receipt written when a cart is purchased. It points
// back at the cart whose items were transitioned to "purchased".
type Order struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint            `gorm:"index;not null" json:"user_id"`
	CartID     uint            `gorm:"not null" json:"cart_id"`
	Cart       *Cart           `gorm:"foreignKey:CartID" json:"cart,omitempty"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
	Status     OrderStatus     `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}
