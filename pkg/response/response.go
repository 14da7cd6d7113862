package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "orgboard/pkg/errors"
)

// Response defines the base API payload shared by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success writes a JSON success response carrying only data.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage writes a JSON success response with a human-readable
// message, used by mutating endpoints. Data may be nil.
func SuccessWithMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a JSON error response derived from an AppError. Unexpected
// failures (5xx) additionally expose the underlying error text for
// diagnostics; validation and not-found responses carry the message only.
func Error(c *gin.Context, err error) {
	if err == nil {
		err = appErrors.ErrInternalServer
	}

	appErr := appErrors.FromError(err)
	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	resp := Response{
		Success: false,
		Message: appErr.Message,
	}
	if status >= http.StatusInternalServerError && appErr.Internal != nil {
		resp.Error = appErr.Internal.Error()
	}

	c.JSON(status, resp)
}
