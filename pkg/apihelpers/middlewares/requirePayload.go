package middlewares

import (
	"log/slog"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequirePayload rejects requests without a body and bodies that are not declared as JSON.
// Chunked bodies of unknown length pass the size check.
func RequirePayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			slog.Debug("payload missing", slog.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "payload missing"})
			return
		}

		mediaType, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
		if err != nil || mediaType != gin.MIMEJSON {
			slog.Debug("unexpected content type", slog.String("path", c.FullPath()), slog.String("contentType", c.GetHeader("Content-Type")))
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{"error": "expected a JSON payload"})
			return
		}
		c.Next()
	}
}
