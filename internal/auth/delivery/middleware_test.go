package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdto "photocards-backend/internal/auth/dto"
	userdomain "photocards-backend/internal/user/domain"
	"photocards-backend/pkg/apperror"
)

// fakeAuthUsecase accepts a single known token and records nothing else.
type fakeAuthUsecase struct {
	validToken  string
	userID      string
	registered  *userdomain.User
	registerErr error
	loginToken  string
	loginErr    error
}

func (f *fakeAuthUsecase) Register(_ context.Context, _ *authdto.RegisterRequest) (*userdomain.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registered, nil
}

func (f *fakeAuthUsecase) Login(_ context.Context, _ *authdto.LoginRequest) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeAuthUsecase) ValidateToken(tokenString string) (string, error) {
	if tokenString == f.validToken {
		return f.userID, nil
	}
	return "", apperror.Unauthorized("invalid or expired token")
}

func protectedRouter(uc *fakeAuthUsecase, called *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(uc), func(c *gin.Context) {
		*called = true
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString(ContextUserID)})
	})
	return r
}

func TestMiddlewareMissingHeader(t *testing.T) {
	called := false
	r := protectedRouter(&fakeAuthUsecase{validToken: "good", userID: "u1"}, &called)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called, "handler must not run without a token")
	assert.Contains(t, w.Body.String(), "message")
}

func TestMiddlewareWrongPrefix(t *testing.T) {
	called := false
	r := protectedRouter(&fakeAuthUsecase{validToken: "good", userID: "u1"}, &called)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic good")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestMiddlewareInvalidTokenFailsClosed(t *testing.T) {
	called := false
	r := protectedRouter(&fakeAuthUsecase{validToken: "good", userID: "u1"}, &called)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called, "handler must not run after a failed verification")
}

func TestMiddlewareValidToken(t *testing.T) {
	called := false
	r := protectedRouter(&fakeAuthUsecase{validToken: "good", userID: "u1"}, &called)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
	assert.Contains(t, w.Body.String(), `"userID":"u1"`)
}
