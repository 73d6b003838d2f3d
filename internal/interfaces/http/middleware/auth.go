package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/pkg/jwt"
	"portfolio.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SessionCookie carries the admin session token
	SessionCookie = "token"
	// AdminIDKey is the context key for the admin ID
	AdminIDKey = "adminId"
	// AdminUsernameKey is the context key for the admin username
	AdminUsernameKey = "adminUsername"
)

// AdminAuthMiddleware rejects requests without a valid admin session.
// The token is read from the session cookie, then from a bearer header.
func AdminAuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			logger.Debug(c.Request.Context(), "Missing session token", zap.String("path", c.Request.URL.Path))
			abortUnauthorized(c, "authentication required")
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			logger.Debug(c.Request.Context(), "Rejected session token",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			if errors.Is(err, jwt.ErrExpiredToken) {
				abortUnauthorized(c, "session has expired")
				return
			}
			abortUnauthorized(c, "invalid session")
			return
		}

		c.Set(AdminIDKey, claims.AdminID)
		c.Set(AdminUsernameKey, claims.Username)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader(AuthorizationHeader)
	if strings.HasPrefix(header, BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Error(c, domainerrors.Unauthorized(message))
	c.Abort()
}

// GetAdminID gets the admin ID set by AdminAuthMiddleware
func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(AdminIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
