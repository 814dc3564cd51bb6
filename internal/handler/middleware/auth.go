package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/handler/httperr"
	"bookmyvenue/internal/pkg/cookie"
	"bookmyvenue/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	bearerPrefix   = "Bearer "
)

type AuthMiddleware struct {
	validator usecase.TokenValidator
}

func NewAuthMiddleware(validator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// RequireAuth accepts the access token from the cookie or a Bearer header and
// stores the caller's id and role on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			deny(c, http.StatusUnauthorized, "Unauthenticated", "Access token required")
			return
		}

		userID, role, err := m.validator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token rejected", "request_id", GetRequestID(c), "error", err.Error())
			deny(c, http.StatusUnauthorized, "Unauthenticated", "Invalid or expired token")
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

// RequireRole must run after RequireAuth. Admins pass every role check.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			deny(c, http.StatusInternalServerError, "Internal", "Internal server error")
			return
		}
		if !role.Satisfies(roles...) {
			deny(c, http.StatusForbidden, "NotAuthorized", "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	if h, ok := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix); ok {
		return strings.TrimSpace(h)
	}
	return ""
}

// GetUserID returns the caller set by RequireAuth.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	return contextValue[uuid.UUID](c, ctxUserIDKey)
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	return contextValue[user.Role](c, ctxUserRoleKey)
}

func contextValue[T any](c *gin.Context, key string) (T, bool) {
	v, ok := c.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

func deny(c *gin.Context, status int, kind, msg string) {
	c.AbortWithStatusJSON(status, httperr.NewResponse(status, kind, msg))
}
