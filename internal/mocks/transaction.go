package mocks

import (
	"context"

	"tickatch/internal/domain/repository"
)

// RepositoryFactory is a stub repository.RepositoryFactory handing out the
// configured doubles.
type RepositoryFactory struct {
	Admins    repository.AdminRepository
	Customers repository.CustomerRepository
	Sellers   repository.SellerRepository
}

func (f *RepositoryFactory) AdminRepo() repository.AdminRepository {
	return f.Admins
}

func (f *RepositoryFactory) CustomerRepo() repository.CustomerRepository {
	return f.Customers
}

func (f *RepositoryFactory) SellerRepo() repository.SellerRepository {
	return f.Sellers
}

// TransactionManager is a pass-through repository.TransactionManager: Execute
// invokes the callback directly with the configured factory, or returns Err
// without invoking it. Rollback semantics are exercised against the real
// manager; tests here only need the callback's error to propagate.
type TransactionManager struct {
	Factory *RepositoryFactory
	Err     error
}

func (m *TransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.Err != nil {
		return m.Err
	}

	return fn(m.Factory)
}
