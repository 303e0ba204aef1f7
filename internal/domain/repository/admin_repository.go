package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tickatch/internal/domain/entity"
)

// ErrAdminNotFound is the persistence-level miss for administrators; the
// usecase layer translates it into the domain not-found error.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the standard operations for administrator
// persistence. The application layer depends on this interface, not the
// concrete implementation.
type AdminRepository interface {
	// Save persists the administrator, inserting or updating as needed, and
	// returns it with storage-managed audit timestamps populated.
	Save(ctx context.Context, admin *entity.Admin) (*entity.Admin, error)

	// FindByID retrieves a single administrator by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByEmail retrieves a single administrator by email.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// ExistsByEmail reports whether an administrator with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CountActiveByRole counts ACTIVE administrators holding the role.
	CountActiveByRole(ctx context.Context, role entity.AdminRole) (int64, error)

	// FindAllByCondition lists administrators matching cond with pagination,
	// returning the page of items and the total match count.
	FindAllByCondition(ctx context.Context, cond AdminSearchCondition, page Pagination) ([]*entity.Admin, int64, error)
}
