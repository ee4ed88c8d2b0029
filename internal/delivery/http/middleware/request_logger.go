package middleware

import (
	"log/slog"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger replaces gin.Logger with one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		logger.Log.Log(c.Request.Context(), level, "HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
			"request_id", c.GetString(response.RequestIDKey),
		)
	}
}
