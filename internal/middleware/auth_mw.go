package middleware

import (
	"errors"
	"log"
	"net/http"

	"hospital_records/internal/service"

	"github.com/gin-gonic/gin"
)

const AuthUserKey = "authUser"

// AuthMiddleware resolves the bearer token from the Authorization header
// to a user and stores it in the request context. The individual
// resolution failures stay distinct in the service layer but are
// presented uniformly to the client as not-authenticated.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authService.ResolveUser(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			if isAuthError(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
				return
			}
			log.Printf("Error resolving session: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}

func isAuthError(err error) bool {
	return errors.Is(err, service.ErrMissingAuthHeader) ||
		errors.Is(err, service.ErrMalformedAuthHeader) ||
		errors.Is(err, service.ErrInvalidToken) ||
		errors.Is(err, service.ErrExpiredToken) ||
		errors.Is(err, service.ErrOrphanedToken) ||
		errors.Is(err, service.ErrInactiveAccount)
}
