package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/sergiofrancodev/ecommerce-academlo/controllers/user"
	"github.com/sergiofrancodev/ecommerce-academlo/middleware"
	"github.com/sergiofrancodev/ecommerce-academlo/utils"
)

// SetupUserRoutes registers the "/users" endpoints. Signup and login are
// public, everything else requires a session.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, mailer utils.EmailSender) {
	userGroup := api.Group("/users")

	userGroup.POST("/", userControllers.CreateUser(db, mailer))
	userGroup.POST("/login", userControllers.Login(db))

	protected := userGroup.Group("")
	protected.Use(middleware.Protect(db))
	{
		protected.GET("/", userControllers.GetAllUsers(db))
		protected.GET("/me", userControllers.GetMyProducts(db))
		protected.GET("/orders", userControllers.GetMyOrders(db))
		protected.GET("/orders/:id", userControllers.GetOrderByID(db))
		protected.PATCH("/:id", userControllers.UpdateUser(db))
		protected.DELETE("/:id", userControllers.DeleteUser(db))
	}
}
