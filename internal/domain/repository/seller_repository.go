package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tickatch/internal/domain/entity"
)

// ErrSellerNotFound is the persistence-level miss for sellers.
var ErrSellerNotFound = errors.New("seller not found")

// SellerRepository defines the standard operations for seller persistence.
type SellerRepository interface {
	// Save persists the seller and returns it with audit timestamps.
	Save(ctx context.Context, seller *entity.Seller) (*entity.Seller, error)

	// FindByID retrieves a single seller by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// FindByEmail retrieves a single seller by email.
	FindByEmail(ctx context.Context, email string) (*entity.Seller, error)

	// ExistsByEmail reports whether a seller with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByBusinessNumber reports whether a seller registered with the
	// normalized business number exists.
	ExistsByBusinessNumber(ctx context.Context, businessNumber string) (bool, error)

	// FindAllByCondition lists sellers matching cond with pagination.
	FindAllByCondition(ctx context.Context, cond SellerSearchCondition, page Pagination) ([]*entity.Seller, int64, error)
}
