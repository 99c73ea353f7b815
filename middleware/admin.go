package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mdasifmahmuddev/banglabaari-server/apperr"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

// RequireAdmin verifies the admin capability token. A valid token without the
// isAdmin claim is a privilege failure, not an authentication one.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.Error(c, apperr.Auth("Admin access denied. No token provided."))
			c.Abort()
			return
		}

		adminID, username, isAdmin, err := utils.ParseAdminToken(secret, token)
		if err != nil {
			utils.Error(c, apperr.Auth("Invalid or expired admin token."))
			c.Abort()
			return
		}
		if !isAdmin {
			utils.Error(c, apperr.Forbidden("Access denied. Admin privileges required."))
			c.Abort()
			return
		}

		c.Set("admin_id", adminID)
		c.Set("admin_username", username)
		c.Next()
	}
}
