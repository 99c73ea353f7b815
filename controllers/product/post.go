package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/apperr"
	"github.com/mdasifmahmuddev/banglabaari-server/models"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

type ColorInput struct {
	Name    string `json:"name" binding:"required"`
	HexCode string `json:"hexCode"`
}

type CreateProductRequest struct {
	Title            string       `json:"title" binding:"required"`
	ShortDescription string       `json:"shortDescription" binding:"required,max=200"`
	FullDescription  string       `json:"fullDescription" binding:"required"`
	Price            *float64     `json:"price" binding:"required,gte=0"`
	DiscountPrice    float64      `json:"discountPrice" binding:"gte=0"`
	Category         string       `json:"category" binding:"required,productcategory"`
	Sizes            []string     `json:"sizes" binding:"required,min=1"`
	Colors           []ColorInput `json:"colors" binding:"required,min=1,dive"`
	Images           []string     `json:"images" binding:"required,min=1"`
	Stock            int          `json:"stock" binding:"gte=0"`
	Featured         bool         `json:"featured"`
}

func toColors(in []ColorInput) []models.ProductColor {
	colors := make([]models.ProductColor, 0, len(in))
	for _, c := range in {
		colors = append(colors, models.ProductColor{Name: c.Name, HexCode: c.HexCode})
	}
	return colors
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, apperr.Validation("Invalid product data: "+err.Error()))
			return
		}

		adminID := c.GetUint("admin_id")
		product := models.Product{
			Title:            req.Title,
			ShortDescription: req.ShortDescription,
			FullDescription:  req.FullDescription,
			Price:            *req.Price,
			DiscountPrice:    req.DiscountPrice,
			Category:         req.Category,
			Sizes:            req.Sizes,
			Colors:           toColors(req.Colors),
			Images:           req.Images,
			Stock:            req.Stock,
			Featured:         req.Featured,
		}
		if adminID != 0 {
			product.CreatedByID = &adminID
		}

		if err := db.Create(&product).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}
		utils.Respond(c, http.StatusCreated, product)
	}
}
