package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/apperr"
	"github.com/mdasifmahmuddev/banglabaari-server/models"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

type AddItemRequest struct {
	Email     string `json:"email" binding:"required,email"`
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
}

type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// FindLine returns the cart line matching the (product, size, color) merge key,
// or nil when no such line exists.
func FindLine(items []models.CartItem, productID uint, size, color string) *models.CartItem {
	for i := range items {
		if items[i].ProductID == productID && items[i].Size == size && items[i].Color == color {
			return &items[i]
		}
	}
	return nil
}

func findUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &user, nil
}

// resolvedCart loads the user's lines with each product reference resolved to
// the current catalog record.
func resolvedCart(db *gorm.DB, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

// POST /cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, apperr.Validation("Please provide all required fields"))
			return
		}

		user, err := findUserByEmail(db, req.Email)
		if err != nil {
			utils.Error(c, err)
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Error(c, apperr.Validation("Product does not exist"))
				return
			}
			utils.Error(c, apperr.Internal(err))
			return
		}

		var items []models.CartItem
		if err := db.Where("user_id = ?", user.ID).Find(&items).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		if line := FindLine(items, req.ProductID, req.Size, req.Color); line != nil {
			line.Quantity += req.Quantity
			line.AddedAt = time.Now()
			if err := db.Save(line).Error; err != nil {
				utils.Error(c, apperr.Internal(err))
				return
			}
		} else {
			item := models.CartItem{
				UserID:    user.ID,
				ProductID: req.ProductID,
				Quantity:  req.Quantity,
				Size:      req.Size,
				Color:     req.Color,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				utils.Error(c, apperr.Internal(err))
				return
			}
		}

		cart, err := resolvedCart(db, user.ID)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.RespondMessage(c, http.StatusOK, "Item added to cart successfully", cart)
	}
}

// GET /cart/:email
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := findUserByEmail(db, c.Param("email"))
		if err != nil {
			utils.Error(c, err)
			return
		}

		cart, err := resolvedCart(db, user.ID)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.Respond(c, http.StatusOK, cart)
	}
}

// PUT /cart/:email/:itemId
//
// A quantity below one removes the line entirely.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
		if err != nil {
			utils.Error(c, apperr.Validation("Invalid cart item id"))
			return
		}

		var req UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, apperr.Validation("Quantity is required"))
			return
		}

		user, uerr := findUserByEmail(db, c.Param("email"))
		if uerr != nil {
			utils.Error(c, uerr)
			return
		}

		var item models.CartItem
		err = db.Where("id = ? AND user_id = ?", itemID, user.ID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, apperr.NotFound("Cart item not found"))
			return
		}
		if err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		if *req.Quantity < 1 {
			if err := db.Delete(&item).Error; err != nil {
				utils.Error(c, apperr.Internal(err))
				return
			}
		} else {
			if err := db.Model(&item).Update("quantity", *req.Quantity).Error; err != nil {
				utils.Error(c, apperr.Internal(err))
				return
			}
		}

		cart, cerr := resolvedCart(db, user.ID)
		if cerr != nil {
			utils.Error(c, cerr)
			return
		}
		utils.RespondMessage(c, http.StatusOK, "Cart updated successfully", cart)
	}
}

// DELETE /cart/:email/:itemId
//
// Removing an absent line is a no-op, not an error.
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
		if err != nil {
			utils.Error(c, apperr.Validation("Invalid cart item id"))
			return
		}

		user, uerr := findUserByEmail(db, c.Param("email"))
		if uerr != nil {
			utils.Error(c, uerr)
			return
		}

		if err := db.Where("id = ? AND user_id = ?", itemID, user.ID).
			Delete(&models.CartItem{}).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		cart, cerr := resolvedCart(db, user.ID)
		if cerr != nil {
			utils.Error(c, cerr)
			return
		}
		utils.RespondMessage(c, http.StatusOK, "Item removed from cart", cart)
	}
}
