package userControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sergiofrancodev/ecommerce-academlo/models"
	"github.com/sergiofrancodev/ecommerce-academlo/utils"
)

type SignupInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=user admin"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/v1/users
func CreateUser(db *gorm.DB, mailer utils.EmailSender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid input: "+err.Error(), http.StatusBadRequest))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		user := models.User{
			Username: input.Username,
			Email:    input.Email,
			Password: string(hash),
			Role:     models.UserRole(input.Role),
		}
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				utils.RespondError(c, utils.NewAppError("Email already taken", http.StatusBadRequest))
				return
			}
			utils.RespondError(c, err)
			return
		}

		if err := mailer.SendWelcome(c.Request.Context(), user.Email, user.Username); err != nil {
			log.Error().Err(err).Uint("user_id", user.ID).Msg("welcome email failed")
		}

		c.JSON(http.StatusCreated, gin.H{"status": "success", "user": user})
	}
}

// POST /api/v1/users/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid input: "+err.Error(), http.StatusBadRequest))
			return
		}

		var user models.User
		err := db.Where("email = ? AND status = ?", input.Email, models.UserStatusActive).
			First(&user).Error
		if err != nil {
			utils.RespondError(c, utils.NewAppError("Credentials invalid", http.StatusBadRequest))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			utils.RespondError(c, utils.NewAppError("Credentials invalid", http.StatusBadRequest))
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID,
			"exp":     time.Now().Add(30 * 24 * time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "token": signed})
	}
}
