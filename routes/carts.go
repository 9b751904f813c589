package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/sergiofrancodev/ecommerce-academlo/controllers/cart"
	"github.com/sergiofrancodev/ecommerce-academlo/middleware"
	"github.com/sergiofrancodev/ecommerce-academlo/utils"
)

// SetupCartRoutes registers the "/cart" endpoints. All of them require a
// session.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB, mailer utils.EmailSender) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.Protect(db))
	{
		cartGroup.GET("/", cartControllers.GetUserCart(db))
		cartGroup.POST("/add-product", cartControllers.AddProductToCart(db))
		cartGroup.PATCH("/update-cart", cartControllers.UpdateProductInCart(db))
		cartGroup.DELETE("/:itemId", cartControllers.RemoveProductFromCart(db))
		cartGroup.POST("/purchase", cartControllers.PurchaseCart(db, mailer))
	}
}
