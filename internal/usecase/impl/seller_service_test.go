package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tickatch/internal/domain/entity"
	domainerrors "tickatch/internal/domain/errors"
	"tickatch/internal/domain/repository"
	"tickatch/internal/domain/service"
	"tickatch/internal/mocks"
	"tickatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sellerServiceFixtures holds all test dependencies for seller service tests.
type sellerServiceFixtures struct {
	svc         usecase.SellerUsecase
	sellers     *mocks.SellerRepository
	admins      *mocks.AdminRepository
	statusPub   *mocks.StatusEventPublisher
	activityPub *mocks.ActivityLogPublisher
}

func createTestSellerService(t *testing.T) sellerServiceFixtures {
	t.Helper()

	sellers := new(mocks.SellerRepository)
	admins := new(mocks.AdminRepository)
	statusPub := new(mocks.StatusEventPublisher)
	activityPub := new(mocks.ActivityLogPublisher)
	txManager := &mocks.TransactionManager{Factory: &mocks.RepositoryFactory{Sellers: sellers, Admins: admins}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return sellerServiceFixtures{
		svc:         NewSellerService(txManager, statusPub, activityPub, entity.NewBankDirectory(), logger),
		sellers:     sellers,
		admins:      admins,
		statusPub:   statusPub,
		activityPub: activityPub,
	}
}

func newTestSeller(t *testing.T) *entity.Seller {
	t.Helper()

	registration, err := entity.NewBusinessRegistration("Festival Tickets Co.", "123-45-67890", "Dana Choi", entity.EmptyAddress())
	require.NoError(t, err)

	seller, err := entity.NewSeller(uuid.New(), "seller@example.com", "Dana Choi", "010-5555-6666", registration)
	require.NoError(t, err)

	return seller
}

func newApprovedSeller(t *testing.T) *entity.Seller {
	t.Helper()

	seller := newTestSeller(t)
	require.NoError(t, seller.Approve(uuid.NewString()))

	return seller
}

func TestSellerService_CreateSeller_Success(t *testing.T) {
	fixtures := createTestSellerService(t)
	ctx := context.Background()

	input := &usecase.CreateSellerInput{
		AuthID:             uuid.New(),
		Email:              "new-seller@example.com",
		Name:               "Dana Choi",
		BusinessName:       "Festival Tickets Co.",
		BusinessNumber:     "123-45-67890",
		RepresentativeName: "Dana Choi",
	}

	fixtures.sellers.On("FindByID", ctx, input.AuthID).Return(nil, repository.ErrSellerNotFound)
	fixtures.sellers.On("ExistsByEmail", ctx, input.Email).Return(false, nil)
	fixtures.sellers.On("ExistsByBusinessNumber", ctx, "1234567890").Return(false, nil)
	fixtures.sellers.On("Save", ctx, mock.AnythingOfType("*entity.Seller")).Return(nil, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.MatchedBy(func(ev *service.ActivityEvent) bool {
		return ev.Action == service.ActionSellerCreated
	})).Return(nil)

	seller, err := fixtures.svc.CreateSeller(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.AuthID, seller.ID())
	assert.True(t, seller.IsPending())
	assert.True(t, seller.IsActive())
	assert.Equal(t, "1234567890", seller.Registration().BusinessNumber())
	fixtures.sellers.AssertExpectations(t)
}

func TestSellerService_CreateSeller_DuplicateBusinessNumber(t *testing.T) {
	fixtures := createTestSellerService(t)
	ctx := context.Background()

	input := &usecase.CreateSellerInput{
		AuthID:             uuid.New(),
		Email:              "new-seller@example.com",
		Name:               "Dana Choi",
		BusinessName:       "Festival Tickets Co.",
		BusinessNumber:     "1234567890",
		RepresentativeName: "Dana Choi",
	}

	fixtures.sellers.On("FindByID", ctx, input.AuthID).Return(nil, repository.ErrSellerNotFound)
	fixtures.sellers.On("ExistsByEmail", ctx, input.Email).Return(false, nil)
	fixtures.sellers.On("ExistsByBusinessNumber", ctx, "1234567890").Return(true, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	_, err := fixtures.svc.CreateSeller(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNumberAlreadyExists)
	fixtures.sellers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSellerService_Approve_Success(t *testing.T) {
	fixtures := createTestSellerService(t)
	ctx := context.Background()
	actor := newTestAdmin(t, entity.RoleManager)
	existing := newTestSeller(t)

	fixtures.admins.On("FindByID", ctx, actor.ID()).Return(actor, nil)
	fixtures.sellers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.sellers.On("Save", ctx, existing).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.MatchedBy(func(ev *service.ActivityEvent) bool {
		return ev.Action == service.ActionSellerApproved && ev.ActorID == actor.ID().String()
	})).Return(nil)

	approved, err := fixtures.svc.Approve(ctx, existing.ID(), actor.ID())

	require.NoError(t, err)
	assert.True(t, approved.IsApproved())
	assert.Equal(t, actor.ID().String(), approved.ApprovedBy())
	assert.NotNil(t, approved.ApprovedAt())
}

func TestSellerService_Approve_AlreadyApproved(t *testing.T) {
	fixtures := createTestSellerService(t)
	ctx := context.Background()
	actor := newTestAdmin(t, entity.RoleManager)
	existing := newApprovedSeller(t)

	fixtures.admins.On("FindByID", ctx, actor.ID()).Return(actor, nil)
	fixtures.sellers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.MatchedBy(func(ev *service.ActivityEvent) bool {
		return ev.Action == service.ActionSellerApproveFailed
	})).Return(nil)

	_, err := fixtures.svc.Approve(ctx, existing.ID(), actor.ID())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSellerAlreadyApproved)
	fixtures.sellers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSellerService_Approve_SuspendedActorForbidden(t *testing.T) {
	fixtures := createTestSellerService(t)
	ctx := context.Background()
	actor := newTestAdmin(t, entity.RoleManager)
	require.NoError(t, actor.Suspend())
	existing := newTestSeller(t)

	fixtures.admins.On("FindByID", ctx, actor.ID()).Return(actor, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	_, err := fixtures.svc.Approve(ctx, existing.ID(), actor.ID())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAdminPermissionDenied)
}

func TestSellerService_Reject_BlankReason(t *testing.T) {
	fixtures := createTestSellerService(t)
	ctx := context.Background()
	actor := newTestAdmin(t, entity.RoleManager)
	existing := newTestSeller(t)

	fixtures.admins.On("FindByID", ctx, actor.ID()).Return(actor, nil)
	fixtures.sellers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	_, err := fixtures.svc.Reject(ctx, existing.ID(), "   ", actor.ID())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRejectionReason)
	assert.True(t, existing.IsPending())
}

func TestSellerService_Reject_Success(t *testing.T) {
	fixtures := createTestSellerService(t)
	ctx := context.Background()
	actor := newTestAdmin(t, entity.RoleManager)
	existing := newTestSeller(t)

	fixtures.admins.On("FindByID", ctx, actor.ID()).Return(actor, nil)
	fixtures.sellers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.sellers.On("Save", ctx, existing).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.MatchedBy(func(ev *service.ActivityEvent) bool {
		return ev.Action == service.ActionSellerRejected
	})).Return(nil)

	rejected, err := fixtures.svc.Reject(ctx, existing.ID(), "registration papers unreadable", actor.ID())

	require.NoError(t, err)
	assert.True(t, rejected.IsRejected())
	assert.Equal(t, "registration papers unreadable", rejected.RejectedReason())
}

func TestSellerService_UpdateSettlementAccount_BeforeApproval(t *testing.T) {
	fixtures := createTestSellerService(t)
	ctx := context.Background()
	existing := newTestSeller(t)

	fixtures.sellers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	_, err := fixtures.svc.UpdateSettlementAccount(ctx, existing.ID(), &usecase.UpdateSettlementAccountInput{
		BankCode:      "004",
		AccountNumber: "110-123-456789",
		AccountHolder: "Dana Choi",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCannotUpdateSettlementBeforeApproval)
}

func TestSellerService_UpdateSettlementAccount_Success(t *testing.T) {
	fixtures := createTestSellerService(t)
	ctx := context.Background()
	existing := newApprovedSeller(t)

	fixtures.sellers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.sellers.On("Save", ctx, existing).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.MatchedBy(func(ev *service.ActivityEvent) bool {
		return ev.Action == service.ActionSellerSettlementChange
	})).Return(nil)

	updated, err := fixtures.svc.UpdateSettlementAccount(ctx, existing.ID(), &usecase.UpdateSettlementAccountInput{
		BankCode:      "004",
		AccountNumber: "110-123-456789",
		AccountHolder: "Dana Choi",
	})

	require.NoError(t, err)
	assert.Equal(t, "110123456789", updated.Settlement().AccountNumber())
	assert.True(t, updated.Settlement().IsComplete())
}

func TestSellerService_UpdateSettlementAccount_UnknownBank(t *testing.T) {
	fixtures := createTestSellerService(t)
	ctx := context.Background()
	existing := newApprovedSeller(t)

	fixtures.sellers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	_, err := fixtures.svc.UpdateSettlementAccount(ctx, existing.ID(), &usecase.UpdateSettlementAccountInput{
		BankCode:      "999",
		AccountNumber: "110-123-456789",
		AccountHolder: "Dana Choi",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBankCode)
}

func TestSellerService_UpdateBusinessInfo_AfterRejection(t *testing.T) {
	fixtures := createTestSellerService(t)
	ctx := context.Background()
	existing := newTestSeller(t)
	require.NoError(t, existing.Reject("papers unreadable"))

	fixtures.sellers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.sellers.On("ExistsByBusinessNumber", ctx, "9876543210").Return(false, nil)
	fixtures.sellers.On("Save", ctx, existing).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	updated, err := fixtures.svc.UpdateBusinessInfo(ctx, existing.ID(), &usecase.UpdateBusinessInfoInput{
		BusinessName:       "Festival Tickets Co.",
		BusinessNumber:     "987-65-43210",
		RepresentativeName: "Dana Choi",
	})

	require.NoError(t, err)
	assert.Equal(t, "9876543210", updated.Registration().BusinessNumber())
	// Re-submitting corrected details does not reopen the review.
	assert.True(t, updated.IsRejected())
}

func TestSellerService_Withdraw_PublishesStatusEvent(t *testing.T) {
	fixtures := createTestSellerService(t)
	ctx := context.Background()
	existing := newApprovedSeller(t)

	fixtures.sellers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.sellers.On("Save", ctx, existing).Return(existing, nil)
	fixtures.statusPub.On("PublishStatusChanged", ctx, mock.MatchedBy(func(ev *service.StatusEvent) bool {
		return ev.RoutingKey == "seller.withdrawn" && ev.UserType == service.UserTypeSeller
	})).Return(nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	err := fixtures.svc.Withdraw(ctx, existing.ID())

	require.NoError(t, err)
	assert.True(t, existing.IsWithdrawn())
	fixtures.statusPub.AssertExpectations(t)
}
