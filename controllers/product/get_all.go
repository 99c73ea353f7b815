package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/apperr"
	"github.com/mdasifmahmuddev/banglabaari-server/models"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		search := c.Query("search")
		featured := c.Query("featured")
		sortBy := c.Query("sort")
		limitStr := c.Query("limit")

		query := db.Model(&models.Product{})

		if category != "" && category != "All" {
			query = query.Where("category = ?", category)
		}
		if featured == "true" {
			query = query.Where("featured = ?", true)
		}
		if search != "" {
			like := "%" + search + "%"
			query = query.Where("title ILIKE ? OR short_description ILIKE ?", like, like)
		}

		switch sortBy {
		case "price-asc":
			query = query.Order("price ASC")
		case "price-desc":
			query = query.Order("price DESC")
		default:
			query = query.Order("created_at DESC")
		}

		if limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 1 {
				utils.Error(c, apperr.Validation("Invalid limit"))
				return
			}
			query = query.Limit(limit)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   products,
			"count":  len(products),
		})
	}
}
