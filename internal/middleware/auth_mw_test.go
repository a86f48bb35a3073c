package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital_records/internal/model"
	"hospital_records/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	user *model.AuthUser
	err  error
}

func (s *stubAuthService) Signup(context.Context, string, string, string, string) (*model.User, string, error) {
	return nil, "", errors.New("not implemented")
}

func (s *stubAuthService) Login(context.Context, string, string) (*model.User, string, error) {
	return nil, "", errors.New("not implemented")
}

func (s *stubAuthService) ResolveUser(context.Context, string) (*model.AuthUser, error) {
	return s.user, s.err
}

func newAuthTestRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		userVal, _ := c.Get(AuthUserKey)
		user := userVal.(*model.AuthUser)
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return router
}

func TestAuthMiddleware_Success(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{
		user: &model.AuthUser{ID: "user-1", Role: model.RoleAdmin, IsActive: true},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthMiddleware_AuthErrorsAreUniform(t *testing.T) {
	// Every resolution failure is presented identically, so clients
	// cannot distinguish an expired token from an unknown one.
	authErrs := []error{
		service.ErrMissingAuthHeader,
		service.ErrMalformedAuthHeader,
		service.ErrInvalidToken,
		service.ErrExpiredToken,
		service.ErrOrphanedToken,
		service.ErrInactiveAccount,
	}

	for _, authErr := range authErrs {
		router := newAuthTestRouter(&stubAuthService{err: authErr})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "error %v", authErr)
		assert.Contains(t, w.Body.String(), "not authenticated", "error %v", authErr)
	}
}

func TestAuthMiddleware_StorageFailure(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
