package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"plek-backend/pkg/response"
)

// RequireJSON rejects write requests whose body is not declared JSON.
// Requests without a body pass through.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			if c.Request.ContentLength == 0 {
				c.Next()
				return
			}
			contentType := c.GetHeader("Content-Type")
			if !strings.Contains(contentType, "application/json") {
				response.UnsupportedMedia(c, "Content-Type must be application/json")
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
