package middleware

import (
	"net/http"

	"hospital_records/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles.
// Membership is an exact, case-sensitive string match. This is the
// single enforcement point; routes declare their allowed role set at
// registration and carry no per-endpoint authorization logic.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get(AuthUserKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User not found in context, ensure auth middleware runs first"})
			return
		}

		user, ok := userVal.(*model.AuthUser)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid user type in context"})
			return
		}

		isAllowed := false
		for _, allowedRole := range allowedRoles {
			if user.Role == allowedRole {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			return
		}

		c.Next()
	}
}
