package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sergiofrancodev/ecommerce-academlo/middleware"
	"github.com/sergiofrancodev/ecommerce-academlo/models"
	"github.com/sergiofrancodev/ecommerce-academlo/utils"
)

const maxProductImages = 5

// POST /api/v1/products
//
// Multipart form: title, description, price, quantity, category_id and up
// to five product_img files.
func CreateProduct(db *gorm.DB, store *utils.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.SessionUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Unauthorized"})
			return
		}

		title := c.PostForm("title")
		description := c.PostForm("description")
		priceStr := c.PostForm("price")
		quantityStr := c.PostForm("quantity")
		categoryIDStr := c.PostForm("category_id")
		if title == "" || description == "" || priceStr == "" || quantityStr == "" || categoryIDStr == "" {
			utils.RespondError(c, utils.NewAppError(
				"title, description, price, quantity and category_id are required",
				http.StatusBadRequest,
			))
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			utils.RespondError(c, utils.NewAppError("Invalid price", http.StatusBadRequest))
			return
		}
		quantity, err := strconv.Atoi(quantityStr)
		if err != nil || quantity < 0 {
			utils.RespondError(c, utils.NewAppError("Invalid quantity", http.StatusBadRequest))
			return
		}
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid category_id", http.StatusBadRequest))
			return
		}

		var category models.Category
		err = db.Where("id = ? AND status = ?", uint(categoryID), models.CategoryStatusActive).
			First(&category).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondError(c, utils.NewAppError("Category not found", http.StatusNotFound))
				return
			}
			utils.RespondError(c, err)
			return
		}

		product := models.Product{
			Title:       title,
			Description: description,
			Price:       price,
			Quantity:    quantity,
			CategoryID:  category.ID,
			UserID:      user.ID,
		}
		if err := db.Create(&product).Error; err != nil {
			utils.RespondError(c, err)
			return
		}

		form, err := c.MultipartForm()
		if err == nil && form != nil {
			files := form.File["product_img"]
			if len(files) > maxProductImages {
				files = files[:maxProductImages]
			}
			for _, file := range files {
				if store == nil {
					log.Warn().Str("file", file.Filename).Msg("image store not configured, skipping upload")
					continue
				}
				key, err := store.Upload(c.Request.Context(), file)
				if err != nil {
					utils.RespondError(c, err)
					return
				}
				img := models.ProductImg{ProductID: product.ID, ImgURL: key}
				if err := db.Create(&img).Error; err != nil {
					utils.RespondError(c, err)
					return
				}
				product.Images = append(product.Images, img)
			}
		}

		c.JSON(http.StatusCreated, gin.H{"status": "success", "product": product})
	}
}
