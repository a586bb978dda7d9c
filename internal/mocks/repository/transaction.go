package repository

import (
	"context"
	"testing"

	"passport/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock bound to the test's lifecycle.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// PassthroughTransactionManager runs transaction callbacks directly against a
// fixed repository factory, so use case tests exercise the real callback body
// without a database. The callback's error is returned unchanged, matching a
// rolled-back transaction.
type PassthroughTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *PassthroughTransactionManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// StaticRepositoryFactory hands out fixed repository instances.
type StaticRepositoryFactory struct {
	UserRepository repository.UserRepository
}

func (f *StaticRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepository
}

var (
	_ repository.TransactionManager = (*MockTransactionManager)(nil)
	_ repository.TransactionManager = (*PassthroughTransactionManager)(nil)
	_ repository.RepositoryFactory  = (*StaticRepositoryFactory)(nil)
)
