package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sergiofrancodev/ecommerce-academlo/models"
	"github.com/sergiofrancodev/ecommerce-academlo/utils"
)

// DELETE /api/v1/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := ownProduct(c, db)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		if err := db.Model(product).Update("status", models.ProductStatusRemoved).Error; err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "product": product})
	}
}
