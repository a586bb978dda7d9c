// Package usecase provides testify mocks for the application use case interfaces.
package usecase

import (
	"context"
	"testing"

	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a testify mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock bound to the test's lifecycle.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*usecase.ChangePasswordOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.ChangePasswordOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (*usecase.ResetPasswordOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.ResetPasswordOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) RevalidateToken(ctx context.Context, userID uuid.UUID) (*usecase.RevalidateOutput, error) {
	args := m.Called(ctx, userID)
	if output, ok := args.Get(0).(*usecase.RevalidateOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

var _ usecase.AuthUsecase = (*MockAuthUsecase)(nil)
