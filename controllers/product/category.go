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

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// GET /api/v1/products/categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Where("status = ?", models.CategoryStatusActive).
			Find(&categories).Error; err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "categories": categories})
	}
}

// POST /api/v1/products/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid input: "+err.Error(), http.StatusBadRequest))
			return
		}

		category := models.Category{Name: input.Name}
		if err := db.Create(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				utils.RespondError(c, utils.NewAppError("Category already exists", http.StatusBadRequest))
				return
			}
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": "success", "category": category})
	}
}

// PATCH /api/v1/products/categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid category id", http.StatusBadRequest))
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondError(c, utils.NewAppError("Invalid input: "+err.Error(), http.StatusBadRequest))
			return
		}

		var category models.Category
		err = db.Where("id = ? AND status = ?", uint(id), models.CategoryStatusActive).
			First(&category).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondError(c, utils.NewAppError("Category not found", http.StatusNotFound))
				return
			}
			utils.RespondError(c, err)
			return
		}

		if err := db.Model(&category).Update("name", input.Name).Error; err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "category": category})
	}
}
