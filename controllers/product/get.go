package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sergiofrancodev/ecommerce-academlo/models"
	"github.com/sergiofrancodev/ecommerce-academlo/utils"
)

// GET /api/v1/products
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("status = ?", models.ProductStatusActive).
			Find(&products).Error; err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "products": products})
	}
}

// GET /api/v1/products/:id
func GetProductByID(db *gorm.DB, store *utils.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid product id", http.StatusBadRequest))
			return
		}

		var product models.Product
		err = db.
			Preload("Images", "status = ?", models.ProductImgStatusActive).
			Where("id = ? AND status = ?", uint(id), models.ProductStatusActive).
			First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondError(c, utils.NewAppError("Product not found", http.StatusNotFound))
				return
			}
			utils.RespondError(c, err)
			return
		}

		// Stored image values are object keys; hand the client full URLs.
		if store != nil {
			for idx := range product.Images {
				product.Images[idx].ImgURL = store.PublicURL(product.Images[idx].ImgURL)
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "product": product})
	}
}
