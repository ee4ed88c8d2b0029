package middleware

import (
	"errors"
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString(response.RequestIDKey)

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// SECURITY: Never expose internal error details to clients.
			logger.Log.ErrorContext(c.Request.Context(), "Unhandled error", "error", err, "request_id", reqID)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			return
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.ErrorContext(c.Request.Context(), appErr.Message,
				"kind", appErr.Kind, "error", appErr.Err, "request_id", reqID)
		} else {
			logger.Log.InfoContext(c.Request.Context(), appErr.Message,
				"kind", appErr.Kind, "request_id", reqID)
		}
		response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
	}
}
