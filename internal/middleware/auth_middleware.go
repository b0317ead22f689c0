package middleware

import (
	"net/http"
	"strings"

	"github.com/contest-hub/backend/internal/models"
	"github.com/contest-hub/backend/internal/service"
	"github.com/contest-hub/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token on gated routes. Clients have
// historically sent both "Bearer <token>" and the bare token, so both
// forms are accepted.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("user_email", claims.Email)
		c.Set("claims", claims)

		c.Next()
	}
}

// AdminMiddleware gates admin-only routes. The caller's role is resolved
// from the user store by the token's email rather than trusted from the
// token itself, so a role change takes effect without re-issuing tokens.
// Must run after AuthMiddleware.
func AdminMiddleware(userService *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("user_email")
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}

		user, err := userService.GetByEmail(email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to resolve user role",
			})
			c.Abort()
			return
		}

		if user == nil || user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
