package middleware

import (
	"net/http"
	"strings"

	"condo-portal/internal/pkg"
	"condo-portal/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// AuthMiddleware validates the bearer token and checks it is still the
// pinned session token for its user. A newer login elsewhere evicts older
// sessions.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": pkg.TagUnauthorized.Error()})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": pkg.TagUnauthorized.Error()})
			c.Abort()
			return
		}

		tokenStr := parts[1]
		sessions := &redis.SessionRepository{}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": pkg.TagUnauthorized.Error()})
			c.Abort()
			return
		}

		pinned, err := sessions.GetUserToken(claims.UserID)
		if err != nil || pinned != tokenStr {
			c.JSON(http.StatusUnauthorized, gin.H{"error": pkg.TagUnauthorized.Error()})
			c.Abort()
			return
		}

		// sliding expiry
		if err = sessions.ExtendUserToken(claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": pkg.TagUnknown.Error()})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
