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

// customerRepository implements the repository.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// Save upserts the customer row and returns the persisted state.
func (repo *customerRepository) Save(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	m := fromCustomerDomain(customer)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(m).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrCustomerAlreadyExists.WrapMessage("email already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save customer")
	}

	return toCustomerDomain(m), nil
}

// FindByID retrieves a single customer by id.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var m model.CustomerModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&m), nil
}

// FindByEmail retrieves a single customer by email.
func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var m model.CustomerModel

	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return toCustomerDomain(&m), nil
}

// ExistsByEmail reports whether a customer with the email exists.
func (repo *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count customers by email")
	}

	return count > 0, nil
}

// FindAllByCondition lists customers matching cond with pagination.
func (repo *customerRepository) FindAllByCondition(ctx context.Context, cond repository.CustomerSearchCondition, page repository.Pagination) ([]*entity.Customer, int64, error) {
	page = page.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.CustomerModel{})
	if cond.Email != "" {
		query = query.Where("email ILIKE ?", "%"+cond.Email+"%")
	}
	if cond.Name != "" {
		query = query.Where("name ILIKE ?", "%"+cond.Name+"%")
	}
	if cond.Phone != "" {
		query = query.Where("phone LIKE ?", "%"+cond.Phone+"%")
	}
	if cond.Status != nil {
		query = query.Where("status = ?", cond.Status.String())
	}
	if cond.Grade != nil {
		query = query.Where("grade = ?", cond.Grade.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers")
	}

	var rows []model.CustomerModel
	err := query.
		Order(orderClause(customerSortColumns, page)).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, toCustomerDomain(&rows[i]))
	}

	return customers, total, nil
}
