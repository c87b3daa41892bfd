package middleware

import (
	"net/http"
	"strings"

	"room-booking-backend/services"
	"room-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuth requires a bearer token issued by AuthService.Login.
func AdminAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" || !auth.Verify(token) {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
