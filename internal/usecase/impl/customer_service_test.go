package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tickatch/internal/domain/entity"
	domainerrors "tickatch/internal/domain/errors"
	"tickatch/internal/domain/repository"
	"tickatch/internal/domain/service"
	"tickatch/internal/mocks"
	"tickatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	svc         usecase.CustomerUsecase
	customers   *mocks.CustomerRepository
	statusPub   *mocks.StatusEventPublisher
	activityPub *mocks.ActivityLogPublisher
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	t.Helper()

	customers := new(mocks.CustomerRepository)
	statusPub := new(mocks.StatusEventPublisher)
	activityPub := new(mocks.ActivityLogPublisher)
	txManager := &mocks.TransactionManager{Factory: &mocks.RepositoryFactory{Customers: customers}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return customerServiceFixtures{
		svc:         NewCustomerService(txManager, statusPub, activityPub, logger),
		customers:   customers,
		statusPub:   statusPub,
		activityPub: activityPub,
	}
}

func newTestCustomer(t *testing.T) *entity.Customer {
	t.Helper()

	customer, err := entity.NewCustomer(uuid.New(), "customer@example.com", "Alice Kim", "010-1234-5678", nil)
	require.NoError(t, err)

	return customer
}

func newWithdrawnCustomer(t *testing.T) *entity.Customer {
	t.Helper()

	customer := newTestCustomer(t)
	require.NoError(t, customer.Withdraw())

	return customer
}

func TestCustomerService_CreateCustomer_Success(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()

	input := &usecase.CreateCustomerInput{
		AuthID: uuid.New(),
		Email:  "new@example.com",
		Name:   "Alice Kim",
		Phone:  "010-1234-5678",
	}

	fixtures.customers.On("FindByID", ctx, input.AuthID).Return(nil, repository.ErrCustomerNotFound)
	fixtures.customers.On("ExistsByEmail", ctx, input.Email).Return(false, nil)
	fixtures.customers.On("Save", ctx, mock.AnythingOfType("*entity.Customer")).Return(nil, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.MatchedBy(func(ev *service.ActivityEvent) bool {
		return ev.Action == service.ActionCustomerCreated
	})).Return(nil)

	customer, err := fixtures.svc.CreateCustomer(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.AuthID, customer.ID())
	assert.Equal(t, input.Email, customer.Email())
	assert.Equal(t, entity.GradeNormal, customer.Grade())
	assert.True(t, customer.IsActive())
	fixtures.customers.AssertExpectations(t)
	fixtures.activityPub.AssertExpectations(t)
}

func TestCustomerService_CreateCustomer_DuplicateEmail(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()

	input := &usecase.CreateCustomerInput{AuthID: uuid.New(), Email: "taken@example.com", Name: "Alice Kim"}

	fixtures.customers.On("FindByID", ctx, input.AuthID).Return(nil, repository.ErrCustomerNotFound)
	fixtures.customers.On("ExistsByEmail", ctx, input.Email).Return(true, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.MatchedBy(func(ev *service.ActivityEvent) bool {
		return ev.Action == service.ActionCustomerCreateFailed
	})).Return(nil)

	customer, err := fixtures.svc.CreateCustomer(ctx, input)

	require.Error(t, err)
	assert.Nil(t, customer)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyExists)
	fixtures.customers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCustomerService_CreateCustomer_DuplicateID(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()
	existing := newTestCustomer(t)

	input := &usecase.CreateCustomerInput{AuthID: existing.ID(), Email: "other@example.com", Name: "Alice Kim"}

	fixtures.customers.On("FindByID", ctx, input.AuthID).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	customer, err := fixtures.svc.CreateCustomer(ctx, input)

	require.Error(t, err)
	assert.Nil(t, customer)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyExists)
	fixtures.customers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCustomerService_CreateCustomer_ActivityFailureSwallowed(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()

	input := &usecase.CreateCustomerInput{AuthID: uuid.New(), Email: "new@example.com", Name: "Alice Kim"}

	fixtures.customers.On("FindByID", ctx, input.AuthID).Return(nil, repository.ErrCustomerNotFound)
	fixtures.customers.On("ExistsByEmail", ctx, input.Email).Return(false, nil)
	fixtures.customers.On("Save", ctx, mock.AnythingOfType("*entity.Customer")).Return(nil, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(errors.New("broker down"))

	customer, err := fixtures.svc.CreateCustomer(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, customer)
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()
	id := uuid.New()

	fixtures.customers.On("FindByID", ctx, id).Return(nil, repository.ErrCustomerNotFound)

	customer, err := fixtures.svc.GetCustomer(ctx, id)

	require.Error(t, err)
	assert.Nil(t, customer)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_UpdateProfile_PartialFields(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()
	existing := newTestCustomer(t)
	phone := "010-9999-8888"

	fixtures.customers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.customers.On("Save", ctx, existing).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	updated, err := fixtures.svc.UpdateProfile(ctx, existing.ID(), &usecase.UpdateCustomerProfileInput{Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, "Alice Kim", updated.Profile().Name())
	assert.Equal(t, "01099998888", updated.Profile().Phone())
}

func TestCustomerService_UpdateProfile_InvalidBirthDate(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()
	existing := newTestCustomer(t)
	future := time.Now().AddDate(1, 0, 0)

	fixtures.customers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	_, err := fixtures.svc.UpdateProfile(ctx, existing.ID(), &usecase.UpdateCustomerProfileInput{BirthDate: &future})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBirthDate)
	fixtures.customers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCustomerService_UpgradeGrade_Success(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()
	existing := newTestCustomer(t)

	fixtures.customers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.customers.On("Save", ctx, existing).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	updated, err := fixtures.svc.UpgradeGrade(ctx, existing.ID(), entity.GradeVIP)

	require.NoError(t, err)
	assert.True(t, updated.IsVIP())
}

func TestCustomerService_UpgradeGrade_DowngradeRejected(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()
	existing := newTestCustomer(t)
	require.NoError(t, existing.UpgradeGrade(entity.GradeVIP))

	fixtures.customers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	_, err := fixtures.svc.UpgradeGrade(ctx, existing.ID(), entity.GradeNormal)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrGradeDowngradeNotAllowed)
	assert.True(t, existing.IsVIP())
	fixtures.customers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCustomerService_Suspend_PublishesStatusEvent(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()
	existing := newTestCustomer(t)

	fixtures.customers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.customers.On("Save", ctx, existing).Return(existing, nil)
	fixtures.statusPub.On("PublishStatusChanged", ctx, mock.MatchedBy(func(ev *service.StatusEvent) bool {
		return ev.RoutingKey == "customer.suspended" && ev.UserID == existing.ID()
	})).Return(nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.MatchedBy(func(ev *service.ActivityEvent) bool {
		return ev.Action == service.ActionCustomerSuspended
	})).Return(nil)

	err := fixtures.svc.Suspend(ctx, existing.ID())

	require.NoError(t, err)
	assert.True(t, existing.IsSuspended())
	fixtures.statusPub.AssertExpectations(t)
}

func TestCustomerService_Suspend_PublishFailurePropagates(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()
	existing := newTestCustomer(t)

	fixtures.customers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.customers.On("Save", ctx, existing).Return(existing, nil)
	fixtures.statusPub.On("PublishStatusChanged", ctx, mock.Anything).Return(errors.New("broker down"))
	fixtures.activityPub.On("PublishActivity", ctx, mock.MatchedBy(func(ev *service.ActivityEvent) bool {
		return ev.Action == service.ActionCustomerSuspendFailed
	})).Return(nil)

	err := fixtures.svc.Suspend(ctx, existing.ID())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEventPublishFailed)
}

func TestCustomerService_Suspend_FailureAuditNamesOperation(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()
	existing := newTestCustomer(t)
	require.NoError(t, existing.Suspend())

	fixtures.customers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.MatchedBy(func(ev *service.ActivityEvent) bool {
		return ev.Action == service.ActionCustomerSuspendFailed && ev.UserType == service.UserTypeCustomer
	})).Return(nil)

	err := fixtures.svc.Suspend(ctx, existing.ID())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadySuspended)
	fixtures.activityPub.AssertExpectations(t)
}

func TestCustomerService_Withdraw_AlreadyWithdrawn(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()
	existing := newWithdrawnCustomer(t)

	fixtures.customers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	err := fixtures.svc.Withdraw(ctx, existing.ID())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyWithdrawn)
	fixtures.statusPub.AssertNotCalled(t, "PublishStatusChanged", mock.Anything, mock.Anything)
}

func TestCustomerService_Activate_FromActiveRejected(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()
	existing := newTestCustomer(t)

	fixtures.customers.On("FindByID", ctx, existing.ID()).Return(existing, nil)
	fixtures.activityPub.On("PublishActivity", ctx, mock.Anything).Return(nil)

	err := fixtures.svc.Activate(ctx, existing.ID())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyActive)
}

func TestCustomerService_ExistsByEmail(t *testing.T) {
	fixtures := createTestCustomerService(t)
	ctx := context.Background()

	fixtures.customers.On("ExistsByEmail", ctx, "someone@example.com").Return(true, nil)

	exists, err := fixtures.svc.ExistsByEmail(ctx, "someone@example.com")

	require.NoError(t, err)
	assert.True(t, exists)
}
