package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sellerpulse/pkg/global"
)

// RequireJSON rejects POST bodies that do not declare a JSON content type
// before any handler attempts to bind them.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")
		if !strings.HasPrefix(contentType, "application/json") {
			c.JSON(http.StatusUnsupportedMediaType, global.ErrorResponse("Content-Type must be application/json", []global.ValidationError{
				{Field: "Content-Type", Message: "expected application/json", Code: "unsupported_media_type"},
			}))
			c.Abort()
			return
		}
		c.Next()
	}
}
