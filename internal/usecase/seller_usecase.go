package usecase

import (
	"context"

	"tickatch/internal/domain/entity"
	"tickatch/internal/domain/repository"

	"github.com/google/uuid"
)

// SellerUsecase defines the interface for seller-related business operations.
type SellerUsecase interface {
	CreateSeller(ctx context.Context, input *CreateSellerInput) (*entity.Seller, error)
	GetSeller(ctx context.Context, id uuid.UUID) (*entity.Seller, error)
	GetSellerByEmail(ctx context.Context, email string) (*entity.Seller, error)
	SearchSellers(ctx context.Context, cond repository.SellerSearchCondition, page repository.Pagination) ([]*entity.Seller, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateSellerProfileInput) (*entity.Seller, error)
	UpdateBusinessInfo(ctx context.Context, id uuid.UUID, input *UpdateBusinessInfoInput) (*entity.Seller, error)
	UpdateSettlementAccount(ctx context.Context, id uuid.UUID, input *UpdateSettlementAccountInput) (*entity.Seller, error)
	Approve(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*entity.Seller, error)
	Reject(ctx context.Context, id uuid.UUID, reason string, actorID uuid.UUID) (*entity.Seller, error)
	Suspend(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) error
	Withdraw(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateSellerInput defines the data required to register a seller.
// Registration always starts in the PENDING approval state. AuthID is the
// account identifier issued by the identity provider at sign-up.
type CreateSellerInput struct {
	AuthID             uuid.UUID `json:"auth_id" validate:"required"`
	Email              string    `json:"email" validate:"required,email"`
	Name               string    `json:"name" validate:"required"`
	Phone              string    `json:"phone,omitempty"`
	BusinessName       string    `json:"business_name" validate:"required"`
	BusinessNumber     string    `json:"business_number" validate:"required"`
	RepresentativeName string    `json:"representative_name" validate:"required"`
	ZipCode            string    `json:"zip_code,omitempty"`
	Address1           string    `json:"address1,omitempty"`
	Address2           string    `json:"address2,omitempty"`
}

// UpdateSellerProfileInput defines the data required to update a seller
// profile. Nil fields are left unchanged.
type UpdateSellerProfileInput struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// UpdateBusinessInfoInput defines the data required to amend a seller's
// business registration.
type UpdateBusinessInfoInput struct {
	BusinessName       string `json:"business_name" validate:"required"`
	BusinessNumber     string `json:"business_number" validate:"required"`
	RepresentativeName string `json:"representative_name" validate:"required"`
	ZipCode            string `json:"zip_code,omitempty"`
	Address1           string `json:"address1,omitempty"`
	Address2           string `json:"address2,omitempty"`
}

// UpdateSettlementAccountInput defines the data required to set a seller's
// payout account. Only approved sellers may do this.
type UpdateSettlementAccountInput struct {
	BankCode      string `json:"bank_code" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	AccountHolder string `json:"account_holder" validate:"required"`
}
