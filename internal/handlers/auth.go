package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/signbridge/signbridge-backend/internal/platform/apierr"
	"github.com/signbridge/signbridge-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /api/v1/auth/login
// Accepts form-encoded credentials like a standard OAuth2 password grant.
func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `form:"username" json:"username"`
		Password string `form:"password" json:"password"`
	}
	if err := c.ShouldBind(&req); err != nil {
		RespondError(c, apierr.Validation(fmt.Errorf("invalid request body")))
		return
	}
	token, expiresIn, err := ah.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"access_token": token, "token_type": "bearer", "expires_in": expiresIn})
}
