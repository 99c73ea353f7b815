package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/config"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	SetupAuthRoutes(r, db, cfg)
	SetupCartRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupOrderRoutes(r, db)
	SetupAdminRoutes(r, db, cfg)
}
