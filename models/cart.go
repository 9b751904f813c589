package models

import (
	"errors"
	"time"
)

type CartStatus string
type CartItemStatus string

const (
	CartStatusActive    CartStatus = "active"
	CartStatusPurchased CartStatus = "purchased"

	CartItemStatusActive    CartItemStatus = "active"
	CartItemStatusRemoved   CartItemStatus = "removed"
	CartItemStatusPurchased CartItemStatus = "purchased"
)

var (
	ErrItemPurchased    = errors.New("cart item already purchased")
	ErrItemNotActive    = errors.New("cart item is not active")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
)

type Cart struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint       `gorm:"uniqueIndex:udx_carts_active_owner,where:status = 'active'" json:"user_id"` // one active cart per user
	Status    CartStatus `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
	Items     []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem tracks a product's presence in a cart. Items are never hard
// deleted; the status field walks active -> removed/purchased, and only a
// removed item may come back to active.
type CartItem struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint           `gorm:"index;uniqueIndex:udx_cart_items_active,where:status = 'active'" json:"cart_id"`
	ProductID uint           `gorm:"uniqueIndex:udx_cart_items_active,where:status = 'active'" json:"product_id"`
	Product   *Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Status    CartItemStatus `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ApplyQuantity sets a new quantity and walks the status machine: zero
// removes the item, a positive quantity revives a removed one.
func (i *CartItem) ApplyQuantity(newQty int) error {
	if i.Status == CartItemStatusPurchased {
		return ErrItemPurchased
	}
	if newQty < 0 {
		return ErrNegativeQuantity
	}

	i.Quantity = newQty
	if newQty == 0 {
		i.Status = CartItemStatusRemoved
	} else if i.Status == CartItemStatusRemoved {
		i.Status = CartItemStatusActive
	}
	return nil
}

// MarkRemoved soft-deletes the item, resetting its quantity.
func (i *CartItem) MarkRemoved() error {
	if i.Status == CartItemStatusPurchased {
		return ErrItemPurchased
	}
	i.Status = CartItemStatusRemoved
	i.Quantity = 0
	return nil
}

// MarkPurchased is only legal from the active state.
func (i *CartItem) MarkPurchased() error {
	if i.Status != CartItemStatusActive {
		return ErrItemNotActive
	}
	i.Status = CartItemStatusPurchased
	return nil
}
