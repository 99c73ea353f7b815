package authControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/apperr"
	"github.com/mdasifmahmuddev/banglabaari-server/models"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type OAuthRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

func userSummary(u *models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"name":     u.Name,
		"email":    u.Email,
		"image":    u.Image,
		"provider": u.Provider,
	}
}

// POST /auth/register
func Register(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, apperr.Validation("Please provide all required fields"))
			return
		}

		email := strings.ToLower(req.Email)

		var existing models.User
		err := db.Where("email = ?", email).First(&existing).Error
		if err == nil {
			utils.Error(c, apperr.Conflict("User with this email already exists"))
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, apperr.Internal(err))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		user := models.User{
			ID:       uuid.NewString(),
			Name:     req.Name,
			Email:    email,
			Password: string(hash),
			Provider: models.ProviderCredentials,
		}
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				utils.Error(c, apperr.Conflict("User with this email already exists"))
				return
			}
			utils.Error(c, apperr.Internal(err))
			return
		}

		token, err := utils.GenerateUserToken(secret, user.ID, user.Email)
		if err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		utils.RespondMessage(c, http.StatusCreated, "User registered successfully", gin.H{
			"user":  userSummary(&user),
			"token": token,
		})
	}
}

// POST /auth/login
func Login(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, apperr.Validation("Please provide email and password"))
			return
		}

		var user models.User
		err := db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, apperr.Auth("Invalid email or password"))
			return
		}
		if err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		if user.Provider == models.ProviderGoogle || user.Password == "" {
			utils.Error(c, apperr.Auth("Please login with Google"))
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			utils.Error(c, apperr.Auth("Invalid email or password"))
			return
		}

		token, err := utils.GenerateUserToken(secret, user.ID, user.Email)
		if err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		utils.RespondMessage(c, http.StatusOK, "Login successful", gin.H{
			"user":  userSummary(&user),
			"token": token,
		})
	}
}

// POST /auth/oauth
//
// The caller has already verified the identity with the provider; we only
// trust the email. An email bound to a password account stays untouched.
func OAuth(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OAuthRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, apperr.Validation("Email is required"))
			return
		}

		email := strings.ToLower(req.Email)

		var user models.User
		err := db.Where("email = ?", email).First(&user).Error
		switch {
		case err == nil:
			if user.Provider == models.ProviderCredentials {
				utils.Error(c, apperr.Validation(
					"Email already registered with password. Please login with email and password."))
				return
			}
			updates := map[string]interface{}{}
			if req.Name != "" {
				updates["name"] = req.Name
			}
			if req.Image != "" {
				updates["image"] = req.Image
			}
			if len(updates) > 0 {
				if err := db.Model(&user).Updates(updates).Error; err != nil {
					utils.Error(c, apperr.Internal(err))
					return
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			name := req.Name
			if name == "" {
				name = strings.SplitN(email, "@", 2)[0]
			}
			user = models.User{
				ID:       uuid.NewString(),
				Name:     name,
				Email:    email,
				Image:    req.Image,
				Provider: models.ProviderGoogle,
			}
			if err := db.Create(&user).Error; err != nil {
				// A concurrent first login for the same email may have won the
				// insert; the account it created is the one to use.
				if !errors.Is(err, gorm.ErrDuplicatedKey) {
					utils.Error(c, apperr.Internal(err))
					return
				}
				if ferr := db.Where("email = ?", email).First(&user).Error; ferr != nil {
					utils.Error(c, apperr.Internal(ferr))
					return
				}
				if user.Provider == models.ProviderCredentials {
					utils.Error(c, apperr.Validation(
						"Email already registered with password. Please login with email and password."))
					return
				}
			}
		default:
			utils.Error(c, apperr.Internal(err))
			return
		}

		token, err := utils.GenerateUserToken(secret, user.ID, user.Email)
		if err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		utils.RespondMessage(c, http.StatusOK, "Google OAuth successful", gin.H{
			"user":  userSummary(&user),
			"token": token,
		})
	}
}

// GET /auth/me (behind RequireUser)
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		err := db.Preload("Cart.Product").First(&user, "id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, apperr.NotFound("User not found"))
			return
		}
		if err != nil {
			utils.Error(c, apperr.Internal(err))
			return
		}

		utils.Respond(c, http.StatusOK, gin.H{"user": user})
	}
}
