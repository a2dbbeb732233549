package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"returnfilers/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuth guards the admin API with a static bearer token.
// An empty configured token rejects every request.
func AdminAuth(token string) gin.HandlerFunc {
	expected := []byte(token)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		supplied, ok := strings.CutPrefix(header, "Bearer ")

		if len(expected) == 0 || !ok || subtle.ConstantTimeCompare([]byte(supplied), expected) != 1 {
			logger.Warn("admin request rejected",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()),
				zap.String("request_id", c.GetString(RequestIDKey)))

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}

		c.Next()
	}
}
