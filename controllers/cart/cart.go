package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sergiofrancodev/ecommerce-academlo/middleware"
	"github.com/sergiofrancodev/ecommerce-academlo/models"
	"github.com/sergiofrancodev/ecommerce-academlo/utils"
)

type AddProductInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	ItemID uint `json:"item_id" binding:"required"`
	NewQty *int `json:"new_qty" binding:"required,min=0"`
}

// activeCart fetches the single active cart of a user, without items.
func activeCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GET /api/v1/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.SessionUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Unauthorized"})
			return
		}

		var cart models.Cart
		err := db.
			Preload("Items", "status = ?", models.CartItemStatusActive).
			Preload("Items.Product").
			Where("user_id = ? AND status = ?", user.ID, models.CartStatusActive).
			First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondError(c, utils.NewAppError("Cart not found", http.StatusNotFound))
				return
			}
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "cart": cart})
	}
}

// POST /api/v1/cart/add-product
func AddProductToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.SessionUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Unauthorized"})
			return
		}

		var input AddProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid input: "+err.Error(), http.StatusBadRequest))
			return
		}

		if err := addProductToCart(db, user, input); err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success"})
	}
}

func addProductToCart(db *gorm.DB, user *models.User, input AddProductInput) error {
	var product models.Product
	err := db.Where("status = ?", models.ProductStatusActive).
		First(&product, "id = ?", input.ProductID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewAppError("Invalid product", http.StatusNotFound)
		}
		return err
	}

	if input.Quantity > product.Quantity {
		return utils.NewAppError(
			fmt.Sprintf("This product only has %d items available", product.Quantity),
			http.StatusBadRequest,
		)
	}

	cart, err := activeCart(db, user.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		// First add for this user, create the cart lazily.
		newCart := models.Cart{UserID: user.ID}
		if err := db.Create(&newCart).Error; err != nil {
			return err
		}
		cart = &newCart
	} else {
		var existing models.CartItem
		err := db.Where("cart_id = ? AND product_id = ? AND status = ?",
			cart.ID, input.ProductID, models.CartItemStatusActive).
			First(&existing).Error
		if err == nil {
			return utils.NewAppError("Product is already in the cart", http.StatusBadRequest)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	item := models.CartItem{
		CartID:    cart.ID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	return db.Create(&item).Error
}

// PATCH /api/v1/cart/update-cart
func UpdateProductInCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.SessionUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Unauthorized"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid input: "+err.Error(), http.StatusBadRequest))
			return
		}

		item, err := updateProductInCart(db, user, input.ItemID, *input.NewQty)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "item": item})
	}
}

func updateProductInCart(db *gorm.DB, user *models.User, itemID uint, newQty int) (*models.CartItem, error) {
	cart, err := activeCart(db, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAppError("This user does not have a cart", http.StatusBadRequest)
		}
		return nil, err
	}

	// Items are resolved through the caller's own cart, so a foreign item id
	// reads as not found.
	var item models.CartItem
	err = db.Where("cart_id = ? AND id = ?", cart.ID, itemID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAppError("Product not found in cart", http.StatusNotFound)
		}
		return nil, err
	}

	var product models.Product
	if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
		return nil, err
	}
	if newQty > product.Quantity {
		return nil, utils.NewAppError("The quantity is greater than available", http.StatusBadRequest)
	}

	if err := item.ApplyQuantity(newQty); err != nil {
		return nil, utils.NewAppError(err.Error(), http.StatusBadRequest)
	}
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DELETE /api/v1/cart/:itemId
func RemoveProductFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.SessionUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Unauthorized"})
			return
		}

		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
		if err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid item id", http.StatusBadRequest))
			return
		}

		item, err := removeProductFromCart(db, user, uint(itemID))
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "item": item})
	}
}

func removeProductFromCart(db *gorm.DB, user *models.User, itemID uint) (*models.CartItem, error) {
	cart, err := activeCart(db, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAppError("This user does not have a cart", http.StatusBadRequest)
		}
		return nil, err
	}

	// The lookup filters on active status, so removing twice reports not
	// found instead of re-applying.
	var item models.CartItem
	err = db.Where("cart_id = ? AND id = ? AND status = ?",
		cart.ID, itemID, models.CartItemStatusActive).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAppError("Product not found in cart", http.StatusNotFound)
		}
		return nil, err
	}

	if err := item.MarkRemoved(); err != nil {
		return nil, utils.NewAppError(err.Error(), http.StatusBadRequest)
	}
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
