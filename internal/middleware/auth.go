package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/signbridge/signbridge-backend/internal/handlers"
	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/services"
)

// SubjectKey is the gin context key holding the authenticated username.
const SubjectKey = "auth_subject"

// RequireAuth guards mutating routes with the bearer token issued at login.
func RequireAuth(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			handlers.RespondError(c, apierr.Unauthorized(fmt.Errorf("missing bearer token")))
			c.Abort()
			return
		}
		subject, err := authService.ValidateToken(token)
		if err != nil {
			handlers.RespondError(c, err)
			c.Abort()
			return
		}
		c.Set(SubjectKey, subject)
		c.Next()
	}
}
