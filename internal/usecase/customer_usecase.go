// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"tickatch/internal/domain/entity"
	"tickatch/internal/domain/repository"

	"github.com/google/uuid"
)

// CustomerUsecase defines the interface for customer-related business operations.
type CustomerUsecase interface {
	CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)
	SearchCustomers(ctx context.Context, cond repository.CustomerSearchCondition, page repository.Pagination) ([]*entity.Customer, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateCustomerProfileInput) (*entity.Customer, error)
	UpgradeGrade(ctx context.Context, id uuid.UUID, grade entity.CustomerGrade) (*entity.Customer, error)
	Suspend(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) error
	Withdraw(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateCustomerInput defines the data required to register a customer.
// AuthID is the account identifier issued by the identity provider at
// sign-up; this service never mints identifiers of its own.
type CreateCustomerInput struct {
	AuthID    uuid.UUID  `json:"auth_id" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Name      string     `json:"name" validate:"required"`
	Phone     string     `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// UpdateCustomerProfileInput defines the data required to update a customer profile.
// Nil fields are left unchanged.
type UpdateCustomerProfileInput struct {
	Name      *string    `json:"name,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}
