package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusActive  ProductStatus = "active"
	ProductStatusRemoved ProductStatus = "removed"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity    int             `gorm:"not null" json:"quantity"` // stock on hand
	CategoryID  uint            `gorm:"index" json:"category_id"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	UserID      uint            `gorm:"index" json:"user_id"` // owner
	Status      ProductStatus   `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
	Images      []ProductImg    `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
