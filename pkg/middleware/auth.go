package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nossa-y/mistral-mcp-hackathon/pkg/logging"
)

// BearerAuthMiddleware validates a static bearer token on protected routes.
// An empty expected token disables the check entirely; that is the local
// development mode and is logged loudly once per request.
func BearerAuthMiddleware(expectedToken string, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expectedToken == "" {
			logger.Warn("No SERVER_TOKEN configured - allowing all requests")
			c.Next()
			return
		}

		auth := c.GetHeader("Authorization")
		if auth == "" {
			GetContextLogger(c, logger).Warn("Rejected request without Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(auth, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			GetContextLogger(c, logger).Warn("Rejected request with malformed Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			c.Abort()
			return
		}

		if parts[1] != expectedToken {
			GetContextLogger(c, logger).Warn("Rejected request with invalid token")
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
