package userControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sergiofrancodev/ecommerce-academlo/middleware"
	"github.com/sergiofrancodev/ecommerce-academlo/models"
	"github.com/sergiofrancodev/ecommerce-academlo/utils"
)

type UpdateUserInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// GET /api/v1/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUser, ok := middleware.SessionUser(c)
		if !ok || !sessionUser.IsAdmin() {
			utils.RespondError(c, utils.NewAppError("Admin permission required", http.StatusBadRequest))
			return
		}

		var users []models.User
		if err := db.
			Select("id", "username", "email", "status", "role").
			Find(&users).Error; err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "users": users})
	}
}

// ownAccount resolves the :id path param and checks it against the session
// user. Account mutations are owner-only.
func ownAccount(c *gin.Context) (*models.User, error) {
	sessionUser, ok := middleware.SessionUser(c)
	if !ok {
		return nil, utils.NewAppError("Unauthorized", http.StatusUnauthorized)
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, utils.NewAppError("Invalid user id", http.StatusBadRequest)
	}
	if sessionUser.ID != uint(id) {
		return nil, utils.NewAppError("You are not the owner of this account", http.StatusBadRequest)
	}
	return sessionUser, nil
}

// PATCH /api/v1/users/:id
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := ownAccount(c)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid input: "+err.Error(), http.StatusBadRequest))
			return
		}

		updates := map[string]interface{}{
			"username": input.Username,
			"email":    input.Email,
		}
		if err := db.Model(user).Updates(updates).Error; err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "user": user})
	}
}

// DELETE /api/v1/users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := ownAccount(c)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		if err := db.Model(user).Update("status", models.UserStatusInactive).Error; err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "user": user})
	}
}

// GET /api/v1/users/me
func GetMyProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.SessionUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Unauthorized"})
			return
		}

		var products []models.Product
		err := db.
			Preload("Category", "status = ?", models.CategoryStatusActive).
			Preload("Images", "status = ?", models.ProductImgStatusActive).
			Where("user_id = ?", user.ID).
			Find(&products).Error
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "products": products})
	}
}

// GET /api/v1/users/orders
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.SessionUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Unauthorized"})
			return
		}

		var orders []models.Order
		err := db.
			Preload("Cart").
			Preload("Cart.Items", "status = ?", models.CartItemStatusPurchased).
			Preload("Cart.Items.Product").
			Where("user_id = ? AND status = ?", user.ID, models.OrderStatusActive).
			Find(&orders).Error
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "orders": orders})
	}
}

// GET /api/v1/users/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.SessionUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Unauthorized"})
			return
		}

		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid order id", http.StatusBadRequest))
			return
		}

		var order models.Order
		err = db.
			Preload("Cart").
			Preload("Cart.Items", "status = ?", models.CartItemStatusPurchased).
			Preload("Cart.Items.Product").
			Where("id = ? AND user_id = ? AND status = ?",
				uint(orderID), user.ID, models.OrderStatusActive).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondError(c, utils.NewAppError("Order not found", http.StatusNotFound))
				return
			}
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "order": order})
	}
}
