package middleware

import (
	"net/http"

	"stayhaven/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin allows only requests whose authenticated principal
// carries the admin role. Must run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role := Principal(c)
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
