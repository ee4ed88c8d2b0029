package middleware

import (
	"io"
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the standard JSON error body and logs it with
// the request ID.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Log.ErrorContext(c.Request.Context(), "Panic recovered",
			"panic", recovered,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(response.RequestIDKey),
		)
		if !c.Writer.Written() {
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
		c.Abort()
	})
}
