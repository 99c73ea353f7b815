package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mdasifmahmuddev/banglabaari-server/config"
	productcontroller "github.com/mdasifmahmuddev/banglabaari-server/controllers/product"
	"github.com/mdasifmahmuddev/banglabaari-server/database"
	"github.com/mdasifmahmuddev/banglabaari-server/routes"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

func main() {
	_ = godotenv.Load()
	utils.InitLogger()
	defer utils.Logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		utils.Logger.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := database.Connect(cfg)
	if err != nil {
		utils.Logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		utils.Logger.Fatal("migration failed", zap.Error(err))
	}
	if err := database.EnsureAdmin(db, cfg); err != nil {
		utils.Logger.Fatal("admin bootstrap failed", zap.Error(err))
	}
	if cfg.SeedProducts {
		if err := database.SeedProducts(db); err != nil {
			utils.Logger.Fatal("catalog seed failed", zap.Error(err))
		}
	}

	productcontroller.RegisterValidators()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Welcome to BanglaBaari API",
			"endpoints": gin.H{
				"health":   "/health",
				"auth":     "/auth",
				"cart":     "/cart",
				"products": "/products",
				"orders":   "/orders",
				"admin":    "/admin",
			},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "success",
			"message":   "BanglaBaari API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Route not found",
			"path":    c.Request.URL.Path,
		})
	})

	routes.SetupRoutes(r, db, cfg)

	utils.Logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Logger.Fatal("server failed", zap.Error(err))
	}
}
