package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/config"
	authControllers "github.com/mdasifmahmuddev/banglabaari-server/controllers/auth"
	"github.com/mdasifmahmuddev/banglabaari-server/middleware"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db, cfg.JWTSecret))
		authGroup.POST("/login", authControllers.Login(db, cfg.JWTSecret))
		authGroup.POST("/oauth", authControllers.OAuth(db, cfg.JWTSecret))
		authGroup.GET("/me", middleware.RequireUser(cfg.JWTSecret), authControllers.Me(db))
	}
}
