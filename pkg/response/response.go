package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the fixed response shape every endpoint returns,
// success or failure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes the envelope with the given status. Success is derived
// from the status class, never set by callers.
func JSON(c *gin.Context, status int, data any, message, errMsg string) {
	c.JSON(status, Envelope{
		Success: status >= 200 && status < 300,
		Data:    data,
		Message: message,
		Error:   errMsg,
	})
}

func OK(c *gin.Context, data any, message string) {
	JSON(c, http.StatusOK, data, message, "")
}

func Created(c *gin.Context, data any, message string) {
	JSON(c, http.StatusCreated, data, message, "")
}

func BadRequest(c *gin.Context, errMsg, message string) {
	JSON(c, http.StatusBadRequest, nil, message, errMsg)
}

func Unauthorized(c *gin.Context, errMsg, message string) {
	JSON(c, http.StatusUnauthorized, nil, message, errMsg)
}

func Forbidden(c *gin.Context, errMsg, message string) {
	JSON(c, http.StatusForbidden, nil, message, errMsg)
}

func NotFound(c *gin.Context, errMsg, message string) {
	JSON(c, http.StatusNotFound, nil, message, errMsg)
}

func UnsupportedMedia(c *gin.Context, message string) {
	JSON(c, http.StatusUnsupportedMediaType, nil, message, "Unsupported Media Type")
}

func InternalError(c *gin.Context, errMsg, message string) {
	JSON(c, http.StatusInternalServerError, nil, message, errMsg)
}
