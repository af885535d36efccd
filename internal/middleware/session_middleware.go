package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savindushenal/menuvibe-api/internal/pkg/apperror"
	"github.com/savindushenal/menuvibe-api/internal/pkg/response"
)

// RequireSession extracts the anonymous storefront session id. Each browser
// session owns its cart exclusively, so every cart route needs the header.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "X-Session-ID header is required", nil)
			c.Abort()
			return
		}
		c.Set("session_id", sessionID)
		c.Next()
	}
}
