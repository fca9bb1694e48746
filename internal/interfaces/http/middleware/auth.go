package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	vo "gmao/internal/domain/user/valueobjects"
	"gmao/internal/infrastructure/auth"
	"gmao/internal/shared/constants"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, claims.Role)

		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.requireRole(func(role vo.Role) bool {
		return role.IsAdmin()
	})
}

// RequireStaff allows admins and technicians.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return m.requireRole(func(role vo.Role) bool {
		return role.IsAdmin() || role.IsTechnicien()
	})
}

func (m *AuthMiddleware) requireRole(allowed func(vo.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok || !allowed(role) {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the Gin context.
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// GetUserRole extracts the authenticated user role from the Gin context.
func GetUserRole(c *gin.Context) (vo.Role, bool) {
	value, exists := c.Get(constants.ContextKeyUserRole)
	if !exists {
		return 0, false
	}
	raw, ok := value.(int)
	if !ok {
		return 0, false
	}
	role := vo.Role(raw)
	return role, role.IsValid()
}
