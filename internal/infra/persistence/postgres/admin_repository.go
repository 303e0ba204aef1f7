package postgres

import (
	"context"

	"tickatch/internal/domain/entity"
	domainerrors "tickatch/internal/domain/errors"
	"tickatch/internal/domain/repository"
	"tickatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// adminRepository implements the repository.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// Save upserts the administrator row and returns the persisted state.
func (repo *adminRepository) Save(ctx context.Context, admin *entity.Admin) (*entity.Admin, error) {
	m := fromAdminDomain(admin)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(m).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrAdminAlreadyExists.WrapMessage("email already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save administrator")
	}

	return toAdminDomain(m), nil
}

// FindByID retrieves a single administrator by id.
func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var m model.AdminModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find administrator by id")
	}

	return toAdminDomain(&m), nil
}

// FindByEmail retrieves a single administrator by email.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var m model.AdminModel

	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find administrator by email")
	}

	return toAdminDomain(&m), nil
}

// ExistsByEmail reports whether an administrator with the email exists.
func (repo *adminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count administrators by email")
	}

	return count > 0, nil
}

// CountActiveByRole counts ACTIVE administrators holding the role.
func (repo *adminRepository) CountActiveByRole(ctx context.Context, role entity.AdminRole) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("role = ? AND status = ?", role.String(), entity.StatusActive.String()).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active administrators")
	}

	return count, nil
}

// FindAllByCondition lists administrators matching cond with pagination.
func (repo *adminRepository) FindAllByCondition(ctx context.Context, cond repository.AdminSearchCondition, page repository.Pagination) ([]*entity.Admin, int64, error) {
	page = page.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.AdminModel{})
	if cond.Email != "" {
		query = query.Where("email ILIKE ?", "%"+cond.Email+"%")
	}
	if cond.Name != "" {
		query = query.Where("name ILIKE ?", "%"+cond.Name+"%")
	}
	if cond.Department != "" {
		query = query.Where("department ILIKE ?", "%"+cond.Department+"%")
	}
	if cond.Status != nil {
		query = query.Where("status = ?", cond.Status.String())
	}
	if cond.Role != nil {
		query = query.Where("role = ?", cond.Role.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count administrators")
	}

	var rows []model.AdminModel
	err := query.
		Order(orderClause(adminSortColumns, page)).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list administrators")
	}

	admins := make([]*entity.Admin, 0, len(rows))
	for i := range rows {
		admins = append(admins, toAdminDomain(&rows[i]))
	}

	return admins, total, nil
}
