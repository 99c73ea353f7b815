package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/mdasifmahmuddev/banglabaari-server/controllers/product"
)

// SetupProductRoutes registers the public catalog endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	productGroup := r.Group("/products")
	{
		productGroup.GET("", productcontroller.GetProducts(db))
		productGroup.GET("/:id", productcontroller.GetProduct(db))
	}
}
