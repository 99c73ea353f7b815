package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/mdasifmahmuddev/banglabaari-server/controllers/cart"
)

// SetupCartRoutes registers the "/cart/*" endpoints. Cart operations are keyed
// by the user's email.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("", cartControllers.AddToCart(db))
		cartGroup.GET("/:email", cartControllers.GetCart(db))
		cartGroup.PUT("/:email/:itemId", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/:email/:itemId", cartControllers.RemoveCartItem(db))
	}
}
