package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/apperr"
	"github.com/mdasifmahmuddev/banglabaari-server/models"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

// UpdateProductRequest carries only the fields present in the body; absent
// fields leave the stored value alone.
type UpdateProductRequest struct {
	Title            *string      `json:"title" binding:"omitempty,min=1"`
	ShortDescription *string      `json:"shortDescription" binding:"omitempty,max=200"`
	FullDescription  *string      `json:"fullDescription"`
	Price            *float64     `json:"price" binding:"omitempty,gte=0"`
	DiscountPrice    *float64     `json:"discountPrice" binding:"omitempty,gte=0"`
	Category         *string      `json:"category" binding:"omitempty,productcategory"`
	Sizes            []string     `json:"sizes" binding:"omitempty,min=1"`
	Colors           []ColorInput `json:"colors" binding:"omitempty,min=1,dive"`
	Images           []string     `json:"images" binding:"omitempty,min=1"`
	Stock            *int         `json:"stock" binding:"omitempty,gte=0"`
	Featured         *bool        `json:"featured"`
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, apperr.Validation("Invalid product data: "+err.Error()))
			return
		}

		var product models.Product
		err := db.First(&product, "id = ?", c.Param("id")).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, apperr.NotFound("Product not found"))
			return
		}
		if err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		if req.Title != nil {
			product.Title = *req.Title
		}
		if req.ShortDescription != nil {
			product.ShortDescription = *req.ShortDescription
		}
		if req.FullDescription != nil {
			product.FullDescription = *req.FullDescription
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.DiscountPrice != nil {
			product.DiscountPrice = *req.DiscountPrice
		}
		if req.Category != nil {
			product.Category = *req.Category
		}
		if req.Sizes != nil {
			product.Sizes = req.Sizes
		}
		if req.Colors != nil {
			product.Colors = toColors(req.Colors)
		}
		if req.Images != nil {
			product.Images = req.Images
		}
		if req.Stock != nil {
			product.Stock = *req.Stock
		}
		if req.Featured != nil {
			product.Featured = *req.Featured
		}

		// Whole-record rewrite keeps the serialized list columns consistent.
		if err := db.Save(&product).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}
		utils.Respond(c, http.StatusOK, product)
	}
}
