package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/interfaces/http/middleware"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/logger"
)

// AuthHandler handles the admin session endpoints
type AuthHandler struct {
	authUsecase  *usecases.AuthUsecase
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		cookieSecure: cookieSecure,
	}
}

// Login checks the admin credentials and sets the session cookie.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	maxAge := int(time.Until(authResponse.ExpiresAt).Seconds())
	h.setSessionCookie(c, authResponse.Token, maxAge)
	logger.Info(c.Request.Context(), "Admin logged in", zap.String("username", authResponse.Admin.Username))

	response.Success(c, http.StatusOK, gin.H{
		"id":       authResponse.Admin.ID,
		"username": authResponse.Admin.Username,
	})
}

// Logout clears the session cookie. Tokens are not revoked server side.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.Message(c, http.StatusOK, "Logged out")
}

// GetMe returns the admin owning the session.
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	admin, err := h.authUsecase.GetAdmin(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
	})
}

// ChangePassword rotates the admin password.
// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.ChangePasswordInput
	if !bindJSON(c, &input) {
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), adminID, &input); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.Unauthorized("current password is incorrect"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Password updated")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", h.cookieSecure, true)
}
