package postgres

import (
	"context"
	"strings"

	"tickatch/internal/domain/entity"
	domainerrors "tickatch/internal/domain/errors"
	"tickatch/internal/domain/repository"
	"tickatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sellerRepository implements the repository.SellerRepository interface using GORM.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// Save upserts the seller row and returns the persisted state.
func (repo *sellerRepository) Save(ctx context.Context, seller *entity.Seller) (*entity.Seller, error) {
	m := fromSellerDomain(seller)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(m).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			// Two unique indexes exist; tell them apart by the violated
			// constraint's name.
			if strings.Contains(strings.ToLower(err.Error()), "business_number") {
				return nil, domainerrors.ErrBusinessNumberAlreadyExists.WrapMessage("business number already exists")
			}

			return nil, domainerrors.ErrSellerAlreadyExists.WrapMessage("email already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save seller")
	}

	return toSellerDomain(m), nil
}

// FindByID retrieves a single seller by id.
func (repo *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var m model.SellerModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by id")
	}

	return toSellerDomain(&m), nil
}

// FindByEmail retrieves a single seller by email.
func (repo *sellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	var m model.SellerModel

	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by email")
	}

	return toSellerDomain(&m), nil
}

// ExistsByEmail reports whether a seller with the email exists.
func (repo *sellerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count sellers by email")
	}

	return count > 0, nil
}

// ExistsByBusinessNumber reports whether a seller registered the normalized
// business number.
func (repo *sellerRepository) ExistsByBusinessNumber(ctx context.Context, businessNumber string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("business_number = ?", businessNumber).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count sellers by business number")
	}

	return count > 0, nil
}

// FindAllByCondition lists sellers matching cond with pagination.
func (repo *sellerRepository) FindAllByCondition(ctx context.Context, cond repository.SellerSearchCondition, page repository.Pagination) ([]*entity.Seller, int64, error) {
	page = page.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.SellerModel{})
	if cond.Email != "" {
		query = query.Where("email ILIKE ?", "%"+cond.Email+"%")
	}
	if cond.Name != "" {
		query = query.Where("name ILIKE ?", "%"+cond.Name+"%")
	}
	if cond.BusinessName != "" {
		query = query.Where("business_name ILIKE ?", "%"+cond.BusinessName+"%")
	}
	if cond.BusinessNumber != "" {
		query = query.Where("business_number = ?", cond.BusinessNumber)
	}
	if cond.Status != nil {
		query = query.Where("status = ?", cond.Status.String())
	}
	if cond.Approval != nil {
		query = query.Where("approval_status = ?", cond.Approval.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count sellers")
	}

	var rows []model.SellerModel
	err := query.
		Order(orderClause(sellerSortColumns, page)).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list sellers")
	}

	sellers := make([]*entity.Seller, 0, len(rows))
	for i := range rows {
		sellers = append(sellers, toSellerDomain(&rows[i]))
	}

	return sellers, total, nil
}
