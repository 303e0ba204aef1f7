package impl

import (
	"context"
	"log/slog"

	"tickatch/internal/domain/entity"
	domainerrors "tickatch/internal/domain/errors"
	"tickatch/internal/domain/repository"
	"tickatch/internal/domain/service"
	"tickatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	fx.In

	txManager   repository.TransactionManager
	statusPub   service.StatusEventPublisher
	activityPub service.ActivityLogPublisher
	logger      *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	txManager repository.TransactionManager,
	statusPub service.StatusEventPublisher,
	activityPub service.ActivityLogPublisher,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		txManager:   txManager,
		statusPub:   statusPub,
		activityPub: activityPub,
		logger:      logger,
	}
}

// CreateCustomer registers a new customer account in ACTIVE state with the
// NORMAL grade.
func (srv *customerService) CreateCustomer(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	srv.logger.Info("Creating customer", "email", input.Email)

	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		// The identifier comes from the identity provider; a repeat of the
		// same id means the account is already registered, not a new one.
		if _, err := customerRepo.FindByID(ctx, input.AuthID); err == nil {
			return errors.Wrap(domainerrors.ErrCustomerAlreadyExists, input.AuthID.String())
		} else if !errors.Is(err, repository.ErrCustomerNotFound) {
			return errors.Wrap(err, "failed to check customer id")
		}

		exists, err := customerRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check customer email")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrCustomerAlreadyExists, input.Email)
		}

		created, err := entity.NewCustomer(input.AuthID, input.Email, input.Name, input.Phone, input.BirthDate)
		if err != nil {
			return err
		}

		saved, err := customerRepo.Save(ctx, created)
		if err != nil {
			return errors.Wrap(err, "failed to save customer")
		}
		customer = saved

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(input.AuthID, service.UserTypeCustomer, service.ActionCustomerCreateFailed, err.Error()))

		return nil, errors.Wrap(err, "failed to create customer")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(customer.ID(), service.UserTypeCustomer, service.ActionCustomerCreated, ""))

	return customer, nil
}

// GetCustomer retrieves a single customer by id.
func (srv *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findCustomer(ctx, repoFactory.CustomerRepo(), id)
		if err != nil {
			return err
		}
		customer = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get customer")
	}

	return customer, nil
}

// GetCustomerByEmail retrieves a single customer by email.
func (srv *customerService) GetCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CustomerRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, email)
			}

			return errors.Wrap(err, "failed to find customer by email")
		}
		customer = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get customer by email")
	}

	return customer, nil
}

// SearchCustomers lists customers matching the condition with pagination.
func (srv *customerService) SearchCustomers(ctx context.Context, cond repository.CustomerSearchCondition, page repository.Pagination) ([]*entity.Customer, int64, error) {
	var (
		customers []*entity.Customer
		total     int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.CustomerRepo().FindAllByCondition(ctx, cond, page)
		if err != nil {
			return errors.Wrap(err, "failed to search customers")
		}
		customers, total = found, count

		return nil
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search customers")
	}

	return customers, total, nil
}

// ExistsByEmail reports whether a customer with the email is registered.
func (srv *customerService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CustomerRepo().ExistsByEmail(ctx, email)
		if err != nil {
			return errors.Wrap(err, "failed to check customer email")
		}
		exists = found

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to check customer email")
	}

	return exists, nil
}

// UpdateProfile updates the customer's name, phone, and birth date.
func (srv *customerService) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateCustomerProfileInput) (*entity.Customer, error) {
	srv.logger.Info("Updating customer profile", "customerID", id)

	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		found, err := findCustomer(ctx, customerRepo, id)
		if err != nil {
			return err
		}

		name := found.Profile().Name()
		if input.Name != nil {
			name = *input.Name
		}
		phone := found.Profile().Phone()
		if input.Phone != nil {
			phone = *input.Phone
		}
		if err := found.UpdateProfile(name, phone); err != nil {
			return err
		}

		if input.BirthDate != nil {
			if err := found.UpdateBirthDate(input.BirthDate); err != nil {
				return err
			}
		}

		saved, err := customerRepo.Save(ctx, found)
		if err != nil {
			return errors.Wrap(err, "failed to save customer")
		}
		customer = saved

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(id, service.UserTypeCustomer, service.ActionCustomerUpdateFailed, err.Error()))

		return nil, errors.Wrap(err, "failed to update customer profile")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(id, service.UserTypeCustomer, service.ActionCustomerUpdated, ""))

	return customer, nil
}

// UpgradeGrade raises the customer's grade. Downgrades are rejected by the
// aggregate.
func (srv *customerService) UpgradeGrade(ctx context.Context, id uuid.UUID, grade entity.CustomerGrade) (*entity.Customer, error) {
	srv.logger.Info("Upgrading customer grade", "customerID", id, "grade", grade)

	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		found, err := findCustomer(ctx, customerRepo, id)
		if err != nil {
			return err
		}

		if err := found.UpgradeGrade(grade); err != nil {
			return err
		}

		saved, err := customerRepo.Save(ctx, found)
		if err != nil {
			return errors.Wrap(err, "failed to save customer")
		}
		customer = saved

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(id, service.UserTypeCustomer, service.ActionCustomerUpdateFailed, err.Error()))

		return nil, errors.Wrap(err, "failed to upgrade customer grade")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(id, service.UserTypeCustomer, service.ActionCustomerUpdated, "grade changed to "+grade.String()))

	return customer, nil
}

// Suspend moves the customer to SUSPENDED and notifies other contexts. A
// notification failure rolls the status change back.
func (srv *customerService) Suspend(ctx context.Context, id uuid.UUID) error {
	return srv.changeStatus(ctx, id, service.ActionCustomerSuspended, service.ActionCustomerSuspendFailed,
		func(c *entity.Customer) error { return c.Suspend() },
		service.CustomerSuspended,
	)
}

// Activate moves the customer back to ACTIVE and notifies other contexts.
func (srv *customerService) Activate(ctx context.Context, id uuid.UUID) error {
	return srv.changeStatus(ctx, id, service.ActionCustomerActivated, service.ActionCustomerActivateFailed,
		func(c *entity.Customer) error { return c.Activate() },
		service.CustomerActivated,
	)
}

// Withdraw moves the customer to the terminal WITHDRAWN state and notifies
// other contexts. The record is retained.
func (srv *customerService) Withdraw(ctx context.Context, id uuid.UUID) error {
	return srv.changeStatus(ctx, id, service.ActionCustomerWithdrawn, service.ActionCustomerWithdrawFailed,
		func(c *entity.Customer) error { return c.Withdraw() },
		service.CustomerWithdrawn,
	)
}

func (srv *customerService) changeStatus(
	ctx context.Context,
	id uuid.UUID,
	action service.Action,
	failAction service.Action,
	mutate func(*entity.Customer) error,
	event func(uuid.UUID) *service.StatusEvent,
) error {
	srv.logger.Info("Changing customer status", "customerID", id, "action", action)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		found, err := findCustomer(ctx, customerRepo, id)
		if err != nil {
			return err
		}

		if err := mutate(found); err != nil {
			return err
		}

		if _, err := customerRepo.Save(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save customer")
		}

		// Published inside the transaction: a delivery failure must roll the
		// status change back.
		if err := srv.statusPub.PublishStatusChanged(ctx, event(found.ID())); err != nil {
			srv.logger.Error("failed to publish status event", "customerID", id, "error", err)

			return errors.Wrap(domainerrors.ErrEventPublishFailed, err.Error())
		}

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(id, service.UserTypeCustomer, failAction, err.Error()))

		return errors.Wrap(err, "failed to change customer status")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(id, service.UserTypeCustomer, action, ""))

	return nil
}

func findCustomer(ctx context.Context, repo repository.CustomerRepository, id uuid.UUID) (*entity.Customer, error) {
	found, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return found, nil
}
