package middleware

import (
	"net/http"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/hotseat-connect4/internal/transport/wire"
)

func CORSMiddleware(allowedOrigins []string, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" {
			if !slices.Contains(allowedOrigins, origin) {
				logger.Warn("Origin not in allowed list", "origin", origin)
				c.AbortWithStatusJSON(http.StatusForbidden, wire.ErrorResponse{Error: wire.CodeForbidden, Message: "Origin not allowed"})
				return
			}
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")

		// Handle preflight OPTIONS requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "same-origin")
		c.Next()
	}
}
