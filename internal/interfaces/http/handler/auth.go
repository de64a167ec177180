package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	identityapp "github.com/ongcloud/backend/internal/application/identity"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token exchanges form-encoded credentials for a bearer token. The response
// body is the flat OAuth2 password-grant shape, not the standard envelope,
// so generic OAuth2 clients can consume it directly.
func (h *AuthHandler) Token(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BindError(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}
