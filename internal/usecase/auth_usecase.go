// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Profile carries arbitrary additional attributes stored with the account.
type RegisterInput struct {
	Email     string
	Password  string
	Password2 string
	Name      string
	Profile   map[string]any
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to change a password.
// UserID comes from a previously verified token, not from user input.
type ChangePasswordInput struct {
	UserID       uuid.UUID
	Password     string
	NewPassword  string
	NewPassword2 string
}

// ResetPasswordInput defines the data required to reset a forgotten password.
type ResetPasswordInput struct {
	Email string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user and their first token.
type RegisterOutput struct {
	User  *entity.User
	Token string
}

// LoginOutput returns the authenticated user's identity and a fresh token.
type LoginOutput struct {
	UserID uuid.UUID
	Email  string
	Token  string
}

// ChangePasswordOutput returns a confirmation message and a fresh token.
type ChangePasswordOutput struct {
	Message string
	Token   string
}

// ResetPasswordOutput returns a confirmation message. The replacement
// password itself only ever leaves the service through the mail channel.
type ResetPasswordOutput struct {
	Message string
}

// RevalidateOutput returns the user's identity and a fresh token.
type RevalidateOutput struct {
	UserID uuid.UUID
	Token  string
}

// AuthUsecase defines the interface for credential-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) (*ChangePasswordOutput, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) (*ResetPasswordOutput, error)
	RevalidateToken(ctx context.Context, userID uuid.UUID) (*RevalidateOutput, error)
}
