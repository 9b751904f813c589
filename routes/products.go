package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/sergiofrancodev/ecommerce-academlo/controllers/product"
	"github.com/sergiofrancodev/ecommerce-academlo/middleware"
	"github.com/sergiofrancodev/ecommerce-academlo/utils"
)

// SetupProductRoutes registers the "/products" endpoints. Browsing is
// public, mutations require a session.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB, store *utils.ImageStore) {
	productGroup := api.Group("/products")

	productGroup.GET("/", productControllers.GetAllProducts(db))
	productGroup.GET("/categories", productControllers.GetAllCategories(db))
	productGroup.GET("/:id", productControllers.GetProductByID(db, store))

	protected := productGroup.Group("")
	protected.Use(middleware.Protect(db))
	{
		protected.POST("/", productControllers.CreateProduct(db, store))
		protected.PATCH("/:id", productControllers.UpdateProduct(db))
		protected.DELETE("/:id", productControllers.DeleteProduct(db))
		protected.POST("/categories", productControllers.CreateCategory(db))
		protected.PATCH("/categories/:id", productControllers.UpdateCategory(db))
	}
}
