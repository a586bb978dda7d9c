// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"testing"

	"passport/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock bound to the test's lifecycle.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock bound to the test's lifecycle.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(userID uuid.UUID, role string) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockPasswordGenerator is a testify mock of service.PasswordGenerator.
type MockPasswordGenerator struct {
	mock.Mock
}

// NewMockPasswordGenerator creates a mock bound to the test's lifecycle.
func NewMockPasswordGenerator(t *testing.T) *MockPasswordGenerator {
	m := &MockPasswordGenerator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordGenerator) Generate() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

// MockEmailSender is a testify mock of service.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

// NewMockEmailSender creates a mock bound to the test's lifecycle.
func NewMockEmailSender(t *testing.T) *MockEmailSender {
	m := &MockEmailSender{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEmailSender) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)

	return args.Error(0)
}

var (
	_ service.PasswordHasher    = (*MockPasswordHasher)(nil)
	_ service.TokenService      = (*MockTokenService)(nil)
	_ service.PasswordGenerator = (*MockPasswordGenerator)(nil)
	_ service.EmailSender       = (*MockEmailSender)(nil)
)
