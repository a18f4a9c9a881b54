package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cursohub/internal/http-api/models"
	"cursohub/internal/http-api/repository"
	"cursohub/internal/http-api/service"
)

// AuthMiddleware is a Gin middleware for JWT authentication of API requests
// It checks for the presence and validity of a JWT token in the Authorization header
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := parts[1]

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// Set user info in context for handlers to use
		c.Set("claims", claims)
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole checks if the user has the specified role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}

		userRole, ok := roleInterface.(string)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid role format"})
			c.Abort()
			return
		}

		if userRole != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "Insufficient permissions",
				"required": requiredRole,
				"current":  userRole,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin is a convenience function for requiring admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// RequirePaid gates course content behind the paywall. The user record is
// re-read on every request so activation via webhook applies on the very
// next navigation, nothing is cached in the token.
func RequirePaid(userRepo repository.UserRepository, accessService service.AccessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get("email")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		user, err := userRepo.FindByEmail(email.(string))
		if err != nil {
			// Any failure fetching the record counts as unauthenticated.
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "user not found",
				"decision": service.DecisionRedirectToLogin,
			})
			c.Abort()
			return
		}

		if decision := accessService.EvaluateUser(user); decision != service.DecisionAllow {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "payment required",
				"decision": decision,
			})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
