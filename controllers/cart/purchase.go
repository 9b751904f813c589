package cartControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sergiofrancodev/ecommerce-academlo/middleware"
	"github.com/sergiofrancodev/ecommerce-academlo/models"
	"github.com/sergiofrancodev/ecommerce-academlo/utils"
)

// POST /api/v1/cart/purchase
//
// Converts every active line item of the caller's active cart into purchased
// state, decrements product stock, and records the order receipt — all in a
// single transaction, so a failure on any line item rolls back its siblings.
// The confirmation email goes out only after the commit; a send failure is
// logged and does not fail the purchase.
func PurchaseCart(db *gorm.DB, mailer utils.EmailSender) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.SessionUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Unauthorized"})
			return
		}

		purchased, total, err := purchaseCart(db, user)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		if err := mailer.SendOrderConfirmation(c.Request.Context(), user.Email, purchased, total); err != nil {
			log.Error().Err(err).
				Uint("user_id", user.ID).
				Msg("order confirmation email failed")
		}

		c.JSON(http.StatusOK, gin.H{"status": "success"})
	}
}

func purchaseCart(db *gorm.DB, user *models.User) ([]models.CartItem, decimal.Decimal, error) {
	var items []models.CartItem
	total := decimal.Zero

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Where("user_id = ? AND status = ?", user.ID, models.CartStatusActive).
			First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewAppError("Cart not found", http.StatusNotFound)
			}
			return err
		}

		if err := tx.Where("cart_id = ? AND status = ?", cart.ID, models.CartItemStatusActive).
			Find(&items).Error; err != nil {
			return err
		}

		for idx := range items {
			item := &items[idx]

			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}

			// Guarded decrement: the quantity check rides on the UPDATE
			// itself, so a concurrent purchase cannot drive stock negative.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return utils.NewAppError(
					fmt.Sprintf("This product only has %d items available", product.Quantity),
					http.StatusBadRequest,
				)
			}
			product.Quantity -= item.Quantity

			if err := item.MarkPurchased(); err != nil {
				return err
			}
			if err := tx.Save(item).Error; err != nil {
				return err
			}

			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			item.Product = &product
		}

		cart.Status = models.CartStatusPurchased
		if err := tx.Save(&cart).Error; err != nil {
			return err
		}

		order := models.Order{
			UserID:     user.ID,
			CartID:     cart.ID,
			TotalPrice: total,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return items, total, nil
}
