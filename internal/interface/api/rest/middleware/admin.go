package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminGuard checks X-Admin-Token against a bcrypt hash from config.
// An empty hash leaves the route open (local/dev setups).
func AdminGuard(tokenHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenHash == "" {
			c.Next()
			return
		}

		token := c.GetHeader("X-Admin-Token")
		if token == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"success": false, "error": "missing X-Admin-Token header"},
			)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"success": false, "error": "invalid admin token"},
			)
			return
		}

		c.Next()
	}
}
