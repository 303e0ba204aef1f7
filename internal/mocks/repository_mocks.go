// Package mocks provides testify doubles for the domain's abstract
// collaborators.
package mocks

import (
	"context"

	"tickatch/internal/domain/entity"
	"tickatch/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// AdminRepository is a mock implementation of repository.AdminRepository.
type AdminRepository struct {
	mock.Mock
}

// Save echoes the argument back when the configured return value is nil,
// mirroring the real repository's insert-then-reload behavior.
func (m *AdminRepository) Save(ctx context.Context, admin *entity.Admin) (*entity.Admin, error) {
	args := m.Called(ctx, admin)
	if saved, ok := args.Get(0).(*entity.Admin); ok {
		return saved, args.Error(1)
	}
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	return admin, nil
}

func (m *AdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	args := m.Called(ctx, id)
	if found, ok := args.Get(0).(*entity.Admin); ok {
		return found, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	args := m.Called(ctx, email)
	if found, ok := args.Get(0).(*entity.Admin); ok {
		return found, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *AdminRepository) CountActiveByRole(ctx context.Context, role entity.AdminRole) (int64, error) {
	args := m.Called(ctx, role)

	return args.Get(0).(int64), args.Error(1)
}

func (m *AdminRepository) FindAllByCondition(ctx context.Context, cond repository.AdminSearchCondition, page repository.Pagination) ([]*entity.Admin, int64, error) {
	args := m.Called(ctx, cond, page)
	if found, ok := args.Get(0).([]*entity.Admin); ok {
		return found, args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

// CustomerRepository is a mock implementation of repository.CustomerRepository.
type CustomerRepository struct {
	mock.Mock
}

// Save echoes the argument back when the configured return value is nil,
// mirroring the real repository's insert-then-reload behavior.
func (m *CustomerRepository) Save(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	args := m.Called(ctx, customer)
	if saved, ok := args.Get(0).(*entity.Customer); ok {
		return saved, args.Error(1)
	}
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	return customer, nil
}

func (m *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if found, ok := args.Get(0).(*entity.Customer); ok {
		return found, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	if found, ok := args.Get(0).(*entity.Customer); ok {
		return found, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *CustomerRepository) FindAllByCondition(ctx context.Context, cond repository.CustomerSearchCondition, page repository.Pagination) ([]*entity.Customer, int64, error) {
	args := m.Called(ctx, cond, page)
	if found, ok := args.Get(0).([]*entity.Customer); ok {
		return found, args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

// SellerRepository is a mock implementation of repository.SellerRepository.
type SellerRepository struct {
	mock.Mock
}

// Save echoes the argument back when the configured return value is nil,
// mirroring the real repository's insert-then-reload behavior.
func (m *SellerRepository) Save(ctx context.Context, seller *entity.Seller) (*entity.Seller, error) {
	args := m.Called(ctx, seller)
	if saved, ok := args.Get(0).(*entity.Seller); ok {
		return saved, args.Error(1)
	}
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	return seller, nil
}

func (m *SellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	args := m.Called(ctx, id)
	if found, ok := args.Get(0).(*entity.Seller); ok {
		return found, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *SellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	args := m.Called(ctx, email)
	if found, ok := args.Get(0).(*entity.Seller); ok {
		return found, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *SellerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *SellerRepository) ExistsByBusinessNumber(ctx context.Context, businessNumber string) (bool, error) {
	args := m.Called(ctx, businessNumber)

	return args.Bool(0), args.Error(1)
}

func (m *SellerRepository) FindAllByCondition(ctx context.Context, cond repository.SellerSearchCondition, page repository.Pagination) ([]*entity.Seller, int64, error) {
	args := m.Called(ctx, cond, page)
	if found, ok := args.Get(0).([]*entity.Seller); ok {
		return found, args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}
