package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/apperr"
	"github.com/mdasifmahmuddev/banglabaari-server/models"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

// DELETE /admin/products/:id — hard delete.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Product{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			utils.Error(c, apperr.Internal(result.Error))
			return
		}
		if result.RowsAffected == 0 {
			utils.Error(c, apperr.NotFound("Product not found"))
			return
		}
		utils.RespondMessage(c, http.StatusOK, "Product deleted successfully", nil)
	}
}
