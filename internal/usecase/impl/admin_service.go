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

// adminService implements the AdminUsecase interface.
type adminService struct {
	fx.In

	txManager   repository.TransactionManager
	statusPub   service.StatusEventPublisher
	activityPub service.ActivityLogPublisher
	logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	statusPub service.StatusEventPublisher,
	activityPub service.ActivityLogPublisher,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager:   txManager,
		statusPub:   statusPub,
		activityPub: activityPub,
		logger:      logger,
	}
}

// CreateAdmin registers a new administrator. Only an active ADMIN-role
// administrator may create others.
func (srv *adminService) CreateAdmin(ctx context.Context, input *usecase.CreateAdminInput) (*entity.Admin, error) {
	srv.logger.Info("Creating administrator", "email", input.Email, "role", input.Role)

	var admin *entity.Admin

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		actor, err := findAdmin(ctx, adminRepo, input.ActorID)
		if err != nil {
			return err
		}
		if !actor.IsActive() {
			return errors.Wrap(domainerrors.ErrAdminPermissionDenied, "actor is not active")
		}
		if !actor.CanCreateAdmin() {
			return errors.Wrap(domainerrors.ErrOnlyAdminCanCreateAdmin, actor.Role().String())
		}

		// The identifier comes from the identity provider; a repeat of the
		// same id means the account is already registered, not a new one.
		if _, err := adminRepo.FindByID(ctx, input.AuthID); err == nil {
			return errors.Wrap(domainerrors.ErrAdminAlreadyExists, input.AuthID.String())
		} else if !errors.Is(err, repository.ErrAdminNotFound) {
			return errors.Wrap(err, "failed to check administrator id")
		}

		exists, err := adminRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check administrator email")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrAdminAlreadyExists, input.Email)
		}

		created, err := entity.NewAdmin(input.AuthID, input.Email, input.Name, input.Phone, input.Department, input.Role)
		if err != nil {
			return err
		}

		saved, err := adminRepo.Save(ctx, created)
		if err != nil {
			return errors.Wrap(err, "failed to save administrator")
		}
		admin = saved

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(input.AuthID, service.UserTypeAdmin, service.ActionAdminCreateFailed, err.Error()).
				WithActor(input.ActorID.String()))

		return nil, errors.Wrap(err, "failed to create administrator")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(admin.ID(), service.UserTypeAdmin, service.ActionAdminCreated, "").
			WithActor(input.ActorID.String()))

	return admin, nil
}

// GetAdmin retrieves a single administrator by id.
func (srv *adminService) GetAdmin(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var admin *entity.Admin

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findAdmin(ctx, repoFactory.AdminRepo(), id)
		if err != nil {
			return err
		}
		admin = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get administrator")
	}

	return admin, nil
}

// GetAdminByEmail retrieves a single administrator by email.
func (srv *adminService) GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var admin *entity.Admin

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AdminRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrAdminNotFound) {
				return errors.Wrap(domainerrors.ErrAdminNotFound, email)
			}

			return errors.Wrap(err, "failed to find administrator by email")
		}
		admin = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get administrator by email")
	}

	return admin, nil
}

// SearchAdmins lists administrators matching the condition with pagination.
func (srv *adminService) SearchAdmins(ctx context.Context, cond repository.AdminSearchCondition, page repository.Pagination) ([]*entity.Admin, int64, error) {
	var (
		admins []*entity.Admin
		total  int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.AdminRepo().FindAllByCondition(ctx, cond, page)
		if err != nil {
			return errors.Wrap(err, "failed to search administrators")
		}
		admins, total = found, count

		return nil
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search administrators")
	}

	return admins, total, nil
}

// ExistsByEmail reports whether an administrator with the email is registered.
func (srv *adminService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AdminRepo().ExistsByEmail(ctx, email)
		if err != nil {
			return errors.Wrap(err, "failed to check administrator email")
		}
		exists = found

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to check administrator email")
	}

	return exists, nil
}

// UpdateProfile updates the administrator's name, phone, and department.
func (srv *adminService) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateAdminProfileInput) (*entity.Admin, error) {
	srv.logger.Info("Updating administrator profile", "adminID", id)

	var admin *entity.Admin

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		found, err := findAdmin(ctx, adminRepo, id)
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
		department := found.Department()
		if input.Department != nil {
			department = *input.Department
		}
		if err := found.UpdateProfile(name, phone, department); err != nil {
			return err
		}

		saved, err := adminRepo.Save(ctx, found)
		if err != nil {
			return errors.Wrap(err, "failed to save administrator")
		}
		admin = saved

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(id, service.UserTypeAdmin, service.ActionAdminUpdateFailed, err.Error()))

		return nil, errors.Wrap(err, "failed to update administrator profile")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(id, service.UserTypeAdmin, service.ActionAdminUpdated, ""))

	return admin, nil
}

// ChangeRole sets the target administrator's role. The acting administrator
// must hold the ADMIN role and cannot change their own role.
func (srv *adminService) ChangeRole(ctx context.Context, id uuid.UUID, role entity.AdminRole, actorID uuid.UUID) (*entity.Admin, error) {
	srv.logger.Info("Changing administrator role", "adminID", id, "role", role, "actorID", actorID)

	var admin *entity.Admin

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		actor, err := findAdmin(ctx, adminRepo, actorID)
		if err != nil {
			return err
		}
		if !actor.IsActive() {
			return errors.Wrap(domainerrors.ErrAdminPermissionDenied, "actor is not active")
		}

		target, err := findAdmin(ctx, adminRepo, id)
		if err != nil {
			return err
		}

		if err := target.ChangeRole(role, actor); err != nil {
			return err
		}

		saved, err := adminRepo.Save(ctx, target)
		if err != nil {
			return errors.Wrap(err, "failed to save administrator")
		}
		admin = saved

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(id, service.UserTypeAdmin, service.ActionAdminUpdateFailed, err.Error()).
				WithActor(actorID.String()))

		return nil, errors.Wrap(err, "failed to change administrator role")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(id, service.UserTypeAdmin, service.ActionAdminRoleChanged, "role changed to "+role.String()).
			WithActor(actorID.String()))

	return admin, nil
}

// Suspend moves the administrator to SUSPENDED. The last active ADMIN-role
// administrator cannot be suspended.
func (srv *adminService) Suspend(ctx context.Context, id uuid.UUID) error {
	return srv.changeStatus(ctx, id, service.ActionAdminSuspended, service.ActionAdminSuspendFailed,
		func(a *entity.Admin) error { return a.Suspend() },
		service.AdminSuspended,
	)
}

// Activate moves the administrator back to ACTIVE.
func (srv *adminService) Activate(ctx context.Context, id uuid.UUID) error {
	return srv.changeStatus(ctx, id, service.ActionAdminActivated, service.ActionAdminActivateFailed,
		func(a *entity.Admin) error { return a.Activate() },
		service.AdminActivated,
	)
}

// Withdraw moves the administrator to the terminal WITHDRAWN state. The last
// active ADMIN-role administrator cannot be withdrawn.
func (srv *adminService) Withdraw(ctx context.Context, id uuid.UUID) error {
	return srv.changeStatus(ctx, id, service.ActionAdminWithdrawn, service.ActionAdminWithdrawFailed,
		func(a *entity.Admin) error { return a.Withdraw() },
		service.AdminWithdrawn,
	)
}

func (srv *adminService) changeStatus(
	ctx context.Context,
	id uuid.UUID,
	action service.Action,
	failAction service.Action,
	mutate func(*entity.Admin) error,
	event func(uuid.UUID) *service.StatusEvent,
) error {
	srv.logger.Info("Changing administrator status", "adminID", id, "action", action)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		found, err := findAdmin(ctx, adminRepo, id)
		if err != nil {
			return err
		}

		// Deactivating the last active ADMIN would leave nobody able to
		// create admins or change roles.
		if action != service.ActionAdminActivated && found.Role().IsAdmin() && found.IsActive() {
			count, err := adminRepo.CountActiveByRole(ctx, entity.RoleAdmin)
			if err != nil {
				return errors.Wrap(err, "failed to count active administrators")
			}
			if count <= 1 {
				return errors.Wrap(domainerrors.ErrCannotDeactivateLastAdmin, id.String())
			}
		}

		if err := mutate(found); err != nil {
			return err
		}

		if _, err := adminRepo.Save(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save administrator")
		}

		// Published inside the transaction: a delivery failure must roll the
		// status change back.
		if err := srv.statusPub.PublishStatusChanged(ctx, event(found.ID())); err != nil {
			srv.logger.Error("failed to publish status event", "adminID", id, "error", err)

			return errors.Wrap(domainerrors.ErrEventPublishFailed, err.Error())
		}

		return nil
	})

	if err != nil {
		publishActivity(ctx, srv.activityPub, srv.logger,
			service.NewActivityEvent(id, service.UserTypeAdmin, failAction, err.Error()))

		return errors.Wrap(err, "failed to change administrator status")
	}

	publishActivity(ctx, srv.activityPub, srv.logger,
		service.NewActivityEvent(id, service.UserTypeAdmin, action, ""))

	return nil
}

func findAdmin(ctx context.Context, repo repository.AdminRepository, id uuid.UUID) (*entity.Admin, error) {
	found, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAdminNotFound, id.String())
		}

		return nil, errors.Wrap(err, "failed to find administrator")
	}

	return found, nil
}
