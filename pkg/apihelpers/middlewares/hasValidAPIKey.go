package middlewares

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "Api-Key"

// HasValidAPIKey protects author routes. Without configured keys every request passes.
func HasValidAPIKey(validKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		keysInHeader := c.Request.Header.Values(apiKeyHeader)
		for _, k := range keysInHeader {
			for _, vk := range validKeys {
				if subtle.ConstantTimeCompare([]byte(k), []byte(vk)) == 1 {
					c.Next()
					return
				}
			}
		}

		slog.Warn("request without valid API key", slog.String("path", c.FullPath()), slog.String("ip", c.ClientIP()))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "a valid API key is missing"})
	}
}
