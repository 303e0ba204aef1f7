package usecase

import (
	"context"

	"tickatch/internal/domain/entity"
	"tickatch/internal/domain/repository"

	"github.com/google/uuid"
)

// AdminUsecase defines the interface for administrator-related business operations.
type AdminUsecase interface {
	CreateAdmin(ctx context.Context, input *CreateAdminInput) (*entity.Admin, error)
	GetAdmin(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
	SearchAdmins(ctx context.Context, cond repository.AdminSearchCondition, page repository.Pagination) ([]*entity.Admin, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateAdminProfileInput) (*entity.Admin, error)
	ChangeRole(ctx context.Context, id uuid.UUID, role entity.AdminRole, actorID uuid.UUID) (*entity.Admin, error)
	Suspend(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) error
	Withdraw(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateAdminInput defines the data required to register an administrator.
// AuthID is the account identifier issued by the identity provider at
// sign-up. ActorID identifies the administrator performing the registration;
// only an ADMIN-role administrator may create others.
type CreateAdminInput struct {
	AuthID     uuid.UUID        `json:"auth_id" validate:"required"`
	Email      string           `json:"email" validate:"required,email"`
	Name       string           `json:"name" validate:"required"`
	Phone      string           `json:"phone,omitempty"`
	Department string           `json:"department,omitempty"`
	Role       entity.AdminRole `json:"role" validate:"required"`
	ActorID    uuid.UUID        `json:"-"`
}

// UpdateAdminProfileInput defines the data required to update an administrator
// profile. Nil fields are left unchanged.
type UpdateAdminProfileInput struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
}
