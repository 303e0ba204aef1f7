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

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	fx.In

	txManager   repository.TransactionManager
	statusPub   service.StatusEventPublisher
	activityPub service.ActivityLogPublisher
	banks       entity.BankDirectory
	logger      *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(
	txManager repository.TransactionManager,
	statusPub service.StatusEventPublisher,
	activityPub service.ActivityLogPublisher,
	banks entity.BankDirectory,
	logger *slog.Logger,
) usecase.SellerUsecase {
	return &sellerService{
		txManager:   txManager,
		statusPub:   statusPub,
		activityPub: activityPub,
		banks:       banks,
		logger:      logger,
	}
}

// CreateSeller registers a new seller account in ACTIVE state with a PENDING
// approval application.
func (srv *sellerService) CreateSeller(ctx context.Context, input *usecase.CreateSellerInput) (*entity.Seller, error) {
	srv.logger.Info("Creating seller", "email", input.Email, "businessNumber", input.BusinessNumber)

	var seller *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.SellerRepo()

		// The identifier comes from the identity provider; a repeat of the
		// same id means the account is already registered, not a new one.
		if _, err := sellerRepo.FindByID(ctx, input.AuthID); err == nil {
			return errors.Wrap(domainerrors.ErrSellerAlreadyExists, input.AuthID.String())
		} else if !errors.Is(err, repository.ErrSellerNotFound) {
			return errors.Wrap(err, "failed to check seller id")
		}

		exists, err := sellerRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check seller email")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrSellerAlreadyExists, input.Email)
		}

		registration, err := buildRegistration(input.BusinessName, input.BusinessNumber, input.RepresentativeName,
			input.ZipCode, input.Address1, input.Address2)
		if err != nil {
			return err
		}

		numberTaken, err := sellerRepo.ExistsByBusinessNumber(ctx, registration.BusinessNumber())
		if err != nil {
			return errors.Wrap(err, "failed to check business number")
		}
		if numberTaken {
			return errors.Wrap(domainerrors.ErrBusinessNumberAlreadyExists, registration.BusinessNumber())
		}

		created, err := entity.NewSeller(input.AuthID, input.Email, input.Name, input.Phone, registration)
		if err != nil {
			return err
		}

		saved, err := sellerRepo.Save(ctx, created)
		if err != nil {
			return errors.Wrap(err, "failed to save seller")
		}
		seller = saved

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(input.AuthID, service.UserTypeSeller, service.ActionSellerCreateFailed, err.Error()))

		return nil, errors.Wrap(err, "failed to create seller")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(seller.ID(), service.UserTypeSeller, service.ActionSellerCreated, ""))

	return seller, nil
}

// GetSeller retrieves a single seller by id.
func (srv *sellerService) GetSeller(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var seller *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findSeller(ctx, repoFactory.SellerRepo(), id)
		if err != nil {
			return err
		}
		seller = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get seller")
	}

	return seller, nil
}

// GetSellerByEmail retrieves a single seller by email.
func (srv *sellerService) GetSellerByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	var seller *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SellerRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return errors.Wrap(domainerrors.ErrSellerNotFound, email)
			}

			return errors.Wrap(err, "failed to find seller by email")
		}
		seller = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get seller by email")
	}

	return seller, nil
}

// SearchSellers lists sellers matching the condition with pagination.
func (srv *sellerService) SearchSellers(ctx context.Context, cond repository.SellerSearchCondition, page repository.Pagination) ([]*entity.Seller, int64, error) {
	var (
		sellers []*entity.Seller
		total   int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.SellerRepo().FindAllByCondition(ctx, cond, page)
		if err != nil {
			return errors.Wrap(err, "failed to search sellers")
		}
		sellers, total = found, count

		return nil
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search sellers")
	}

	return sellers, total, nil
}

// ExistsByEmail reports whether a seller with the email is registered.
func (srv *sellerService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SellerRepo().ExistsByEmail(ctx, email)
		if err != nil {
			return errors.Wrap(err, "failed to check seller email")
		}
		exists = found

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to check seller email")
	}

	return exists, nil
}

// UpdateProfile updates the seller's contact profile.
func (srv *sellerService) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateSellerProfileInput) (*entity.Seller, error) {
	srv.logger.Info("Updating seller profile", "sellerID", id)

	var seller *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.SellerRepo()

		found, err := findSeller(ctx, sellerRepo, id)
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

		saved, err := sellerRepo.Save(ctx, found)
		if err != nil {
			return errors.Wrap(err, "failed to save seller")
		}
		seller = saved

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(id, service.UserTypeSeller, service.ActionSellerUpdateFailed, err.Error()))

		return nil, errors.Wrap(err, "failed to update seller profile")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(id, service.UserTypeSeller, service.ActionSellerUpdated, ""))

	return seller, nil
}

// UpdateBusinessInfo amends the seller's business registration. A rejected
// seller may re-submit corrected details; the approval workflow is not
// reopened by this edit.
func (srv *sellerService) UpdateBusinessInfo(ctx context.Context, id uuid.UUID, input *usecase.UpdateBusinessInfoInput) (*entity.Seller, error) {
	srv.logger.Info("Updating seller business info", "sellerID", id)

	var seller *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.SellerRepo()

		found, err := findSeller(ctx, sellerRepo, id)
		if err != nil {
			return err
		}

		registration, err := buildRegistration(input.BusinessName, input.BusinessNumber, input.RepresentativeName,
			input.ZipCode, input.Address1, input.Address2)
		if err != nil {
			return err
		}

		if registration.BusinessNumber() != found.Registration().BusinessNumber() {
			numberTaken, err := sellerRepo.ExistsByBusinessNumber(ctx, registration.BusinessNumber())
			if err != nil {
				return errors.Wrap(err, "failed to check business number")
			}
			if numberTaken {
				return errors.Wrap(domainerrors.ErrBusinessNumberAlreadyExists, registration.BusinessNumber())
			}
		}

		if err := found.UpdateBusinessInfo(registration.BusinessName(), registration.BusinessNumber(),
			registration.RepresentativeName(), registration.BusinessAddress()); err != nil {
			return err
		}

		saved, err := sellerRepo.Save(ctx, found)
		if err != nil {
			return errors.Wrap(err, "failed to save seller")
		}
		seller = saved

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(id, service.UserTypeSeller, service.ActionSellerUpdateFailed, err.Error()))

		return nil, errors.Wrap(err, "failed to update seller business info")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(id, service.UserTypeSeller, service.ActionSellerUpdated, "business registration amended"))

	return seller, nil
}

// UpdateSettlementAccount sets the seller's payout account. Only approved
// sellers may do this.
func (srv *sellerService) UpdateSettlementAccount(ctx context.Context, id uuid.UUID, input *usecase.UpdateSettlementAccountInput) (*entity.Seller, error) {
	srv.logger.Info("Updating seller settlement account", "sellerID", id, "bankCode", input.BankCode)

	var seller *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.SellerRepo()

		found, err := findSeller(ctx, sellerRepo, id)
		if err != nil {
			return err
		}

		if err := found.UpdateSettlementAccount(srv.banks, input.BankCode, input.AccountNumber, input.AccountHolder); err != nil {
			return err
		}

		saved, err := sellerRepo.Save(ctx, found)
		if err != nil {
			return errors.Wrap(err, "failed to save seller")
		}
		seller = saved

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(id, service.UserTypeSeller, service.ActionSellerUpdateFailed, err.Error()))

		return nil, errors.Wrap(err, "failed to update settlement account")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(id, service.UserTypeSeller, service.ActionSellerSettlementChange, ""))

	return seller, nil
}

// Approve marks a pending seller application as APPROVED. The acting
// administrator must be active and hold at least the MANAGER role.
func (srv *sellerService) Approve(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*entity.Seller, error) {
	srv.logger.Info("Approving seller", "sellerID", id, "actorID", actorID)

	var seller *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := srv.approvingAdmin(ctx, repoFactory, actorID)
		if err != nil {
			return err
		}

		sellerRepo := repoFactory.SellerRepo()

		found, err := findSeller(ctx, sellerRepo, id)
		if err != nil {
			return err
		}

		if err := found.Approve(actor.ID().String()); err != nil {
			return err
		}

		saved, err := sellerRepo.Save(ctx, found)
		if err != nil {
			return errors.Wrap(err, "failed to save seller")
		}
		seller = saved

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(id, service.UserTypeSeller, service.ActionSellerApproveFailed, err.Error()).
				WithActor(actorID.String()))

		return nil, errors.Wrap(err, "failed to approve seller")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(id, service.UserTypeSeller, service.ActionSellerApproved, "").
			WithActor(actorID.String()))

	return seller, nil
}

// Reject marks a pending seller application as REJECTED with a reason. The
// acting administrator must be active and hold at least the MANAGER role.
func (srv *sellerService) Reject(ctx context.Context, id uuid.UUID, reason string, actorID uuid.UUID) (*entity.Seller, error) {
	srv.logger.Info("Rejecting seller", "sellerID", id, "actorID", actorID)

	var seller *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := srv.approvingAdmin(ctx, repoFactory, actorID); err != nil {
			return err
		}

		sellerRepo := repoFactory.SellerRepo()

		found, err := findSeller(ctx, sellerRepo, id)
		if err != nil {
			return err
		}

		if err := found.Reject(reason); err != nil {
			return err
		}

		saved, err := sellerRepo.Save(ctx, found)
		if err != nil {
			return errors.Wrap(err, "failed to save seller")
		}
		seller = saved

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(id, service.UserTypeSeller, service.ActionSellerRejectFailed, err.Error()).
				WithActor(actorID.String()))

		return nil, errors.Wrap(err, "failed to reject seller")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(id, service.UserTypeSeller, service.ActionSellerRejected, reason).
			WithActor(actorID.String()))

	return seller, nil
}

// Suspend moves the seller to SUSPENDED and notifies other contexts.
func (srv *sellerService) Suspend(ctx context.Context, id uuid.UUID) error {
	return srv.changeStatus(ctx, id, service.ActionSellerSuspended, service.ActionSellerSuspendFailed,
		func(s *entity.Seller) error { return s.Suspend() },
		service.SellerSuspended,
	)
}

// Activate moves the seller back to ACTIVE and notifies other contexts.
func (srv *sellerService) Activate(ctx context.Context, id uuid.UUID) error {
	return srv.changeStatus(ctx, id, service.ActionSellerActivated, service.ActionSellerActivateFailed,
		func(s *entity.Seller) error { return s.Activate() },
		service.SellerActivated,
	)
}

// Withdraw moves the seller to the terminal WITHDRAWN state and notifies
// other contexts.
func (srv *sellerService) Withdraw(ctx context.Context, id uuid.UUID) error {
	return srv.changeStatus(ctx, id, service.ActionSellerWithdrawn, service.ActionSellerWithdrawFailed,
		func(s *entity.Seller) error { return s.Withdraw() },
		service.SellerWithdrawn,
	)
}

func (srv *sellerService) changeStatus(
	ctx context.Context,
	id uuid.UUID,
	action service.Action,
	failAction service.Action,
	mutate func(*entity.Seller) error,
	event func(uuid.UUID) *service.StatusEvent,
) error {
	srv.logger.Info("Changing seller status", "sellerID", id, "action", action)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.SellerRepo()

		found, err := findSeller(ctx, sellerRepo, id)
		if err != nil {
			return err
		}

		if err := mutate(found); err != nil {
			return err
		}

		if _, err := sellerRepo.Save(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save seller")
		}

		// Published inside the transaction: a delivery failure must roll the
		// status change back.
		if err := srv.statusPub.PublishStatusChanged(ctx, event(found.ID())); err != nil {
			srv.logger.Error("failed to publish status event", "sellerID", id, "error", err)

			return errors.Wrap(domainerrors.ErrEventPublishFailed, err.Error())
		}

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(id, service.UserTypeSeller, failAction, err.Error()))

		return errors.Wrap(err, "failed to change seller status")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(id, service.UserTypeSeller, action, ""))

	return nil
}

// approvingAdmin loads the acting administrator and checks the approval
// permission.
func (srv *sellerService) approvingAdmin(ctx context.Context, repoFactory repository.RepositoryFactory, actorID uuid.UUID) (*entity.Admin, error) {
	actor, err := findAdmin(ctx, repoFactory.AdminRepo(), actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsActive() {
		return nil, errors.Wrap(domainerrors.ErrAdminPermissionDenied, "actor is not active")
	}
	if !actor.CanApproveSeller() {
		return nil, errors.Wrap(domainerrors.ErrAdminPermissionDenied, actor.Role().String())
	}

	return actor, nil
}

func buildRegistration(businessName, businessNumber, representativeName, zipCode, address1, address2 string) (entity.BusinessRegistration, error) {
	address, err := entity.NewAddress(zipCode, address1, address2)
	if err != nil {
		return entity.BusinessRegistration{}, err
	}

	return entity.NewBusinessRegistration(businessName, businessNumber, representativeName, address)
}

func findSeller(ctx context.Context, repo repository.SellerRepository, id uuid.UUID) (*entity.Seller, error) {
	found, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSellerNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}

	return found, nil
}
