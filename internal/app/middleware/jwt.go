package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"resident-records-service/internal/domain/services"
	"resident-records-service/internal/error/response"
)

// Context keys set by Authenticate.
const (
	ContextEmail = "email"
	ContextRole  = "role"
)

// extractToken strips an optional "Bearer " prefix
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return strings.TrimSpace(authHeader)
}

// Authenticate requires a valid session token and stores its email and role
// on the context.
func Authenticate(jwtService services.InterfaceJWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		claims, err := jwtService.ExtractClaims(extractToken(authHeader))
		if err != nil {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole rejects sessions whose role is not one of roles. It must run
// after Authenticate.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Insufficient permissions: requires "+strings.Join(roles, " or ")+" role")
		c.Abort()
	}
}
