package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"passport/internal/domain/service"
	mockSvc "passport/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveAuthenticated(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, map[string]any) {
	e := echo.New()
	m := NewAuthMiddleware(tokenSvc)
	e.GET("/protected", func(c echo.Context) error {
		userID, ok := UserIDFromContext(c)
		require.True(t, ok)

		return c.JSON(http.StatusOK, map[string]any{"uid": userID})
	}, m.Authenticate)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	return rec, payload
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.On("Validate", "good-token").Return(&service.Claims{UserID: userID}, nil)

	rec, payload := serveAuthenticated(t, tokenSvc, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), payload["uid"])
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, payload := serveAuthenticated(t, tokenSvc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, payload["ok"])
	assert.Equal(t, "authorization header is missing", payload["msg"])
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, payload := serveAuthenticated(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token format, must be Bearer token", payload["msg"])
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.On("Validate", "bad-token").Return(nil, errors.New("failed to parse token"))

	rec, payload := serveAuthenticated(t, tokenSvc, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid or expired token", payload["msg"])
}
