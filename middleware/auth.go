package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"stayhaven/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Context keys set by JWTAuthMiddleware for downstream handlers.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// JWTAuthMiddleware authenticates the bearer token and stores the
// principal (user id and role) on the request context. A Redis-backed
// token-hash cache short-circuits repeat lookups; a cache outage
// degrades to plain token validation rather than rejecting traffic.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, role, err := utils.ExtractPrincipalFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		// Revocation check: a revoked token's hash is removed from the
		// auth cache. Treat cache errors as a miss, not a rejection.
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			cacheKey := "auth:revoked:" + utils.HashToken(tokenString)
			if _, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
				return
			} else if err != redis.Nil {
				zap.L().Warn("auth cache lookup failed", zap.Error(err))
			}
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// Principal extracts the authenticated user id and role set by
// JWTAuthMiddleware.
func Principal(c *gin.Context) (string, string) {
	userID, _ := c.Get(CtxUserID)
	role, _ := c.Get(CtxRole)
	id, _ := userID.(string)
	r, _ := role.(string)
	return id, r
}
