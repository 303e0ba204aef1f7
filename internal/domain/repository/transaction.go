package repository

import "context"

// TransactionManager defines the interface for managing database
// transactions. It lets the use case layer own the load-mutate-persist
// boundary without depending on a specific DB driver.
type TransactionManager interface {
	// Execute runs fn within a database transaction. If fn returns an error
	// the transaction is rolled back, otherwise it is committed. All
	// repository operations obtained through the factory share the same
	// transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to the current
// transaction.
type RepositoryFactory interface {
	// AdminRepo returns an AdminRepository bound to the transaction.
	AdminRepo() AdminRepository

	// CustomerRepo returns a CustomerRepository bound to the transaction.
	CustomerRepo() CustomerRepository

	// SellerRepo returns a SellerRepository bound to the transaction.
	SellerRepo() SellerRepository
}
