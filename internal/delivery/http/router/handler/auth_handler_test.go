package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passport/internal/delivery/http/middleware"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	mockUsecase "passport/internal/mocks/usecase"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
	e.POST("/reset-password", h.ResetPassword)
	e.GET("/health", HealthCheck)

	return e, uc
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	return payload
}

func TestAuthHandler_Register_Created(t *testing.T) {
	e, uc := newTestServer(t)

	userID := uuid.New()
	uc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Email == "a@b.com" && input.Password == "secret" && input.Password2 == "secret"
	})).Return(&usecase.RegisterOutput{
		User: &entity.User{
			ID:      userID,
			Email:   "a@b.com",
			Name:    "Test User",
			Profile: map[string]any{"locale": "en"},
		},
		Token: "signed-token",
	}, nil)

	rec := doJSON(e, http.MethodPost, "/register",
		`{"email":"a@b.com","password":"secret","password2":"secret","name":"Test User","profile":{"locale":"en"}}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	payload := decodeEnvelope(t, rec)
	assert.Equal(t, true, payload["ok"])
	assert.Equal(t, "success", payload["tipo"])
	assert.Equal(t, "user created", payload["msg"])
	assert.Equal(t, "signed-token", payload["token"])

	user, ok := payload["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, userID.String(), user["uid"])
	assert.Equal(t, "a@b.com", user["email"])
	assert.Equal(t, "Test User", user["name"])
	assert.Equal(t, "en", user["locale"])
	assert.NotContains(t, user, "passwordHash")
	assert.NotContains(t, user, "password_hash")
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed"))

	rec := doJSON(e, http.MethodPost, "/register",
		`{"email":"a@b.com","password":"secret","password2":"secret"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	payload := decodeEnvelope(t, rec)
	assert.Equal(t, false, payload["ok"])
	assert.Equal(t, "error", payload["tipo"])
	assert.Equal(t, "user exists", payload["msg"])
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrPasswordsMismatch.WrapMessage("registration validation failed"))

	rec := doJSON(e, http.MethodPost, "/register",
		`{"email":"a@b.com","password":"x","password2":"y"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeEnvelope(t, rec)
	assert.Equal(t, false, payload["ok"])
	assert.Equal(t, "passwords mismatch", payload["msg"])
}

func TestAuthHandler_Login_OK(t *testing.T) {
	e, uc := newTestServer(t)

	userID := uuid.New()
	uc.On("Login", mock.Anything, &usecase.LoginInput{Email: "a@b.com", Password: "secret"}).
		Return(&usecase.LoginOutput{UserID: userID, Email: "a@b.com", Token: "signed-token"}, nil)

	rec := doJSON(e, http.MethodPost, "/login", `{"email":"a@b.com","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeEnvelope(t, rec)
	assert.Equal(t, true, payload["ok"])
	assert.Equal(t, "login successful", payload["msg"])
	assert.Equal(t, userID.String(), payload["uid"])
	assert.Equal(t, "a@b.com", payload["email"])
	assert.Equal(t, "signed-token", payload["token"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	rec := doJSON(e, http.MethodPost, "/login", `{"email":"ghost@b.com","password":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	payload := decodeEnvelope(t, rec)
	assert.Equal(t, false, payload["ok"])
	assert.Equal(t, "invalid credentials", payload["msg"])
}

func TestAuthHandler_ResetPassword_OK(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("ResetPassword", mock.Anything, &usecase.ResetPasswordInput{Email: "a@b.com"}).
		Return(&usecase.ResetPasswordOutput{Message: "a new password was sent to a@b.com"}, nil)

	rec := doJSON(e, http.MethodPost, "/reset-password", `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeEnvelope(t, rec)
	assert.Equal(t, true, payload["ok"])
	assert.Equal(t, "a new password was sent to a@b.com", payload["msg"])
	// No replacement password in the response body.
	assert.NotContains(t, payload, "password")
}

func TestAuthHandler_ResetPassword_Unavailable(t *testing.T) {
	e, uc := newTestServer(t)

	uc.On("ResetPassword", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmailServiceUnavailable.WrapMessage("password reset failed"))

	rec := doJSON(e, http.MethodPost, "/reset-password", `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	payload := decodeEnvelope(t, rec)
	assert.Equal(t, false, payload["ok"])
	assert.Equal(t, "email service unavailable", payload["msg"])
}

func TestAuthHandler_HealthCheck(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeEnvelope(t, rec)
	assert.Equal(t, true, payload["ok"])
	assert.Equal(t, "ok", payload["status"])
}
