package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/config"
	adminController "github.com/mdasifmahmuddev/banglabaari-server/controllers/admin"
	orderControllers "github.com/mdasifmahmuddev/banglabaari-server/controllers/order"
	productcontroller "github.com/mdasifmahmuddev/banglabaari-server/controllers/product"
	"github.com/mdasifmahmuddev/banglabaari-server/middleware"
)

// SetupAdminRoutes registers the "/admin/*" endpoints. Everything except login
// requires the admin capability token.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")

	adminGroup.POST("/login", adminController.Login(db, cfg.JWTSecret))

	protected := adminGroup.Group("")
	protected.Use(middleware.RequireAdmin(cfg.JWTSecret))
	{
		protected.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		protected.GET("/orders/ws", orderControllers.OrderFeedHandler)
		protected.PUT("/orders/:id", orderControllers.UpdateOrderStatusHandler(db))

		protected.POST("/products", productcontroller.CreateProduct(db))
		protected.PUT("/products/:id", productcontroller.UpdateProduct(db))
		protected.DELETE("/products/:id", productcontroller.DeleteProduct(db))
		protected.GET("/products/export-excel", productcontroller.ExportProductsToExcel(db))

		protected.GET("/stats", adminController.Stats(db))
	}
}
