package adminController

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/apperr"
	"github.com/mdasifmahmuddev/banglabaari-server/models"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /admin/login
func Login(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, apperr.Validation("Please provide username and password"))
			return
		}

		var admin models.Admin
		err := db.Where("username = ?", req.Username).First(&admin).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, apperr.Auth("Invalid credentials"))
			return
		}
		if err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
			utils.Error(c, apperr.Auth("Invalid credentials"))
			return
		}

		now := time.Now()
		if err := db.Model(&admin).Update("last_login", now).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		token, err := utils.GenerateAdminToken(secret, admin.ID, admin.Username)
		if err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		utils.Respond(c, http.StatusOK, gin.H{
			"token": token,
			"admin": gin.H{
				"id":       admin.ID,
				"username": admin.Username,
				"email":    admin.Email,
				"role":     admin.Role,
			},
		})
	}
}

// GET /admin/stats
func Stats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalProducts, totalOrders, pendingOrders int64
		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}
		if err := db.Model(&models.Order{}).
			Where("order_status = ?", models.OrderStatusPending).
			Count(&pendingOrders).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		var totalRevenue float64
		if err := db.Model(&models.Order{}).
			Where("order_status <> ?", models.OrderStatusCancelled).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&totalRevenue).Error; err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		utils.Respond(c, http.StatusOK, gin.H{
			"totalProducts": totalProducts,
			"totalOrders":   totalOrders,
			"pendingOrders": pendingOrders,
			"totalRevenue":  totalRevenue,
		})
	}
}
