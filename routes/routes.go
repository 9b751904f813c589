package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sergiofrancodev/ecommerce-academlo/utils"
)

// SetupRoutes wires every route group under /api/v1.
func SetupRoutes(r *gin.Engine, db *gorm.DB, mailer utils.EmailSender, store *utils.ImageStore) {
	api := r.Group("/api/v1")

	SetupUserRoutes(api, db, mailer)
	SetupProductRoutes(api, db, store)
	SetupCartRoutes(api, db, mailer)
}
