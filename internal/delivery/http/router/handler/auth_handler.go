// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/response"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for credential-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Email     string         `json:"email"`
	Password  string         `json:"password"`
	Password2 string         `json:"password2"`
	Name      string         `json:"name"`
	Profile   map[string]any `json:"profile"`
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
		Name:      req.Name,
		Profile:   req.Profile,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The registered profile attributes are merged into the user object
	// alongside uid and email; the password hash never leaves the service.
	user := make(map[string]any, len(output.User.Profile)+3)
	for key, value := range output.User.Profile {
		user[key] = value
	}
	user["uid"] = output.User.ID
	user["email"] = output.User.Email
	if output.User.Name != "" {
		user["name"] = output.User.Name
	}

	return response.Success(c, http.StatusCreated, "user created", map[string]any{
		"user":  user,
		"token": output.Token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "login successful", map[string]any{
		"uid":   output.UserID,
		"email": output.Email,
		"token": output.Token,
	})
}

type changePasswordRequest struct {
	Password     string `json:"password"`
	NewPassword  string `json:"newPassword"`
	NewPassword2 string `json:"newPassword2"`
}

// ChangePassword handles the password change request for the authenticated user.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "invalid user id in token")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid password change input")
	}

	output, err := h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		UserID:       userID,
		Password:     req.Password,
		NewPassword:  req.NewPassword,
		NewPassword2: req.NewPassword2,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Message, map[string]any{
		"token": output.Token,
	})
}

type resetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPassword handles the forgotten-password reset request.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid password reset input")
	}

	output, err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Email: req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Message, nil)
}

// Revalidate issues a fresh token for the authenticated user.
func (h *AuthHandler) Revalidate(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Error(c, http.StatusUnauthorized, "invalid user id in token")
	}

	output, err := h.uc.RevalidateToken(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "token revalidated", map[string]any{
		"uid":   output.UserID,
		"token": output.Token,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "service is healthy", map[string]any{
		"status": "ok",
	})
}
