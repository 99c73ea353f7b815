package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mdasifmahmuddev/banglabaari-server/apperr"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}

// RequireUser verifies the bearer token and stores the subject on the context
// as "user_id" and "email".
func RequireUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.Error(c, apperr.Auth("No token provided"))
			c.Abort()
			return
		}

		userID, email, err := utils.ParseUserToken(secret, token)
		if err != nil {
			utils.Error(c, apperr.Auth("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("email", email)
		c.Next()
	}
}
