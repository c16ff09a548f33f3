package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/obaspub/scholarsite/backend/internal/config"
	"github.com/obaspub/scholarsite/backend/internal/middleware"
	"github.com/obaspub/scholarsite/backend/internal/services"
	"github.com/obaspub/scholarsite/backend/pkg/response"
)

type AuthHandler struct {
	authService *services.AuthService
	ldapConfig  *config.LDAPConfig
}

func NewAuthHandler(authService *services.AuthService, ldapCfg *config.LDAPConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		ldapConfig:  ldapCfg,
	}
}

// Login authenticates the admin and issues a token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		response.Unauthorized(c, err.Error())
		return
	}

	response.Success(c, resp)
}

// Refresh issues a fresh token before the current one expires
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	resp, err := h.authService.RefreshToken(middleware.GetUserID(c))
	if err != nil {
		response.Unauthorized(c, err.Error())
		return
	}
	response.Success(c, resp)
}

// Logout ends the admin session
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout()
	response.Success(c, gin.H{"message": "logged out"})
}

// Me returns the authenticated user
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.GetUserByID(middleware.GetUserID(c))
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}
	response.Success(c, user)
}

// ChangePassword updates the current user's password
// POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ChangePassword(middleware.GetUserID(c), req.OldPassword, req.NewPassword); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "password changed"})
}

// AuthConfig tells the login page which auth methods are available
// GET /api/auth/config
func (h *AuthHandler) AuthConfig(c *gin.Context) {
	response.Success(c, gin.H{
		"ldap_enabled": h.ldapConfig.Enabled,
	})
}
