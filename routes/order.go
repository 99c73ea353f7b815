package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/mdasifmahmuddev/banglabaari-server/controllers/order"
)

// SetupOrderRoutes registers the "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orderGroup := r.Group("/orders")
	{
		orderGroup.POST("", orderControllers.PlaceOrderHandler(db, orderControllers.BroadcastNewOrder))
		orderGroup.GET("/user/:email", orderControllers.GetUserOrdersHandler(db))
		orderGroup.GET("/:id", orderControllers.GetOrderHandler(db))
	}
}
