package response

import (
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the RequestID middleware stores under.
const RequestIDKey = "RequestID"

// Response standardizes the API JSON response. Successes carry ok (and data
// when there is any); failures carry only error.
type Response struct {
	OK        bool                  `json:"ok,omitempty"`
	Data      interface{}           `json:"data,omitempty"`
	Error     string                `json:"error,omitempty"`
	Fields    []apperror.FieldError `json:"fields,omitempty"`
	RequestID string                `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, Response{
		OK:        true,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, fields []apperror.FieldError) {
	c.JSON(code, Response{
		Error:     message,
		Fields:    fields,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
