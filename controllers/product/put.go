package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sergiofrancodev/ecommerce-academlo/middleware"
	"github.com/sergiofrancodev/ecommerce-academlo/models"
	"github.com/sergiofrancodev/ecommerce-academlo/utils"
)

type UpdateProductInput struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
}

// ownProduct loads an active product by path id and checks the session
// user owns it.
func ownProduct(c *gin.Context, db *gorm.DB) (*models.Product, error) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		return nil, utils.NewAppError("Unauthorized", http.StatusUnauthorized)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, utils.NewAppError("Invalid product id", http.StatusBadRequest)
	}

	var product models.Product
	err = db.Where("id = ? AND status = ?", uint(id), models.ProductStatusActive).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAppError("Product not found", http.StatusNotFound)
		}
		return nil, err
	}

	if product.UserID != user.ID {
		return nil, utils.NewAppError("Not authorized to update", http.StatusBadRequest)
	}
	return &product, nil
}

// PATCH /api/v1/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := ownProduct(c, db)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid input: "+err.Error(), http.StatusBadRequest))
			return
		}

		updates := make(map[string]interface{})
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.Quantity != nil {
			updates["quantity"] = *input.Quantity
		}

		if len(updates) > 0 {
			if err := db.Model(product).Updates(updates).Error; err != nil {
				utils.RespondError(c, err)
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "product": product})
	}
}
