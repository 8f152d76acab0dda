package middleware

import (
	"net/http"
	"strings"
	"tzconv/internal/auth"
	"tzconv/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards routes with bearer tokens
type AuthMiddleware struct {
	authService *auth.Service
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// AuthRequired rejects requests without a valid bearer token
func (m *AuthMiddleware) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "no authorization header"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid authorization header"})
			return
		}

		claims, err := m.authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
			return
		}

		c.Set("claims", claims)
		c.Set("is_admin", claims.IsAdmin)

		c.Next()
	}
}

// AdminRequired rejects authenticated requests whose token lacks the admin claim
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists || !isAdmin.(bool) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{Error: "admin access required"})
			return
		}
		c.Next()
	}
}
