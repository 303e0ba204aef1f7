package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tickatch/internal/domain/entity"
)

// ErrCustomerNotFound is the persistence-level miss for customers.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer
// persistence.
type CustomerRepository interface {
	// Save persists the customer and returns it with audit timestamps.
	Save(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)

	// FindByID retrieves a single customer by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByEmail retrieves a single customer by email.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// ExistsByEmail reports whether a customer with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindAllByCondition lists customers matching cond with pagination.
	FindAllByCondition(ctx context.Context, cond CustomerSearchCondition, page Pagination) ([]*entity.Customer, int64, error)
}
