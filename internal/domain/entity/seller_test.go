package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tickatch/internal/domain/errors"
)

func newPendingSeller(t *testing.T) *Seller {
	t.Helper()

	registration, err := NewBusinessRegistration("Festival Tickets Co.", "123-45-67890", "Dana Choi", Address{})
	require.NoError(t, err)

	seller, err := NewSeller(uuid.New(), "seller@example.com", "Dana Choi", "010-5555-4444", registration)
	require.NoError(t, err)

	return seller
}

func newApprovedActiveSeller(t *testing.T) *Seller {
	t.Helper()

	seller := newPendingSeller(t)
	require.NoError(t, seller.Approve(uuid.NewString()))

	return seller
}

func TestNewSeller(t *testing.T) {
	seller := newPendingSeller(t)

	assert.Equal(t, StatusActive, seller.Status())
	assert.Equal(t, ApprovalPending, seller.Approval())
	assert.True(t, seller.Settlement().IsZero())
	assert.Equal(t, "1234567890", seller.Registration().BusinessNumber())
	assert.False(t, seller.CanRegisterListing())
}

func TestSellerApprove(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		seller := newPendingSeller(t)
		approver := uuid.NewString()

		require.NoError(t, seller.Approve(approver))
		assert.True(t, seller.IsApproved())
		assert.Equal(t, approver, seller.ApprovedBy())
		require.NotNil(t, seller.ApprovedAt())
		assert.WithinDuration(t, time.Now(), *seller.ApprovedAt(), time.Minute)
		assert.True(t, seller.CanRegisterListing())
	})

	t.Run("approve twice rejected", func(t *testing.T) {
		seller := newApprovedActiveSeller(t)

		assert.ErrorIs(t, seller.Approve(uuid.NewString()), apperrors.ErrSellerAlreadyApproved)
	})

	t.Run("approve after rejection rejected", func(t *testing.T) {
		seller := newPendingSeller(t)
		require.NoError(t, seller.Reject("incomplete registration papers"))

		assert.ErrorIs(t, seller.Approve(uuid.NewString()), apperrors.ErrSellerAlreadyRejected)
	})

	t.Run("approve withdrawn seller rejected", func(t *testing.T) {
		seller := newPendingSeller(t)
		require.NoError(t, seller.Withdraw())

		assert.ErrorIs(t, seller.Approve(uuid.NewString()), apperrors.ErrUserAlreadyWithdrawn)
	})
}

func TestSellerReject(t *testing.T) {
	t.Run("reject pending with reason", func(t *testing.T) {
		seller := newPendingSeller(t)

		require.NoError(t, seller.Reject("business number could not be verified"))
		assert.True(t, seller.IsRejected())
		assert.Equal(t, "business number could not be verified", seller.RejectedReason())
		assert.Nil(t, seller.ApprovedAt())
		assert.Empty(t, seller.ApprovedBy())
	})

	t.Run("blank reason rejected", func(t *testing.T) {
		seller := newPendingSeller(t)

		assert.ErrorIs(t, seller.Reject("   "), apperrors.ErrInvalidRejectionReason)
		assert.True(t, seller.IsPending())
	})

	t.Run("reject after approval rejected", func(t *testing.T) {
		seller := newApprovedActiveSeller(t)

		assert.ErrorIs(t, seller.Reject("too late"), apperrors.ErrSellerAlreadyApproved)
	})
}

func TestSellerUpdateBusinessInfo(t *testing.T) {
	t.Run("rejected seller may amend registration", func(t *testing.T) {
		seller := newPendingSeller(t)
		require.NoError(t, seller.Reject("wrong representative"))

		require.NoError(t, seller.UpdateBusinessInfo("Festival Tickets Co.", "222-33-44444", "Eun Seo", Address{}))
		assert.Equal(t, "2223344444", seller.Registration().BusinessNumber())
		// Amending does not reopen the review.
		assert.True(t, seller.IsRejected())
	})

	t.Run("invalid number rejected", func(t *testing.T) {
		seller := newPendingSeller(t)

		err := seller.UpdateBusinessInfo("Festival Tickets Co.", "12345", "Dana Choi", Address{})
		assert.ErrorIs(t, err, apperrors.ErrInvalidBusinessNumber)
	})
}

func TestSellerUpdateSettlementAccount(t *testing.T) {
	banks := testBanks()

	t.Run("approved seller sets account", func(t *testing.T) {
		seller := newApprovedActiveSeller(t)

		require.NoError(t, seller.UpdateSettlementAccount(banks, "004", "110-123-456789", "Dana Choi"))
		assert.Equal(t, "110123456789", seller.Settlement().AccountNumber())
		assert.True(t, seller.Settlement().IsComplete())
	})

	t.Run("pending seller rejected", func(t *testing.T) {
		seller := newPendingSeller(t)

		err := seller.UpdateSettlementAccount(banks, "004", "110123456789", "Dana Choi")
		assert.ErrorIs(t, err, apperrors.ErrCannotUpdateSettlementBeforeApproval)
	})

	t.Run("suspension does not block settlement changes", func(t *testing.T) {
		seller := newApprovedActiveSeller(t)
		require.NoError(t, seller.Suspend())

		require.NoError(t, seller.UpdateSettlementAccount(banks, "088", "110123456789", "Dana Choi"))
		assert.Equal(t, "088", seller.Settlement().BankCode())
	})

	t.Run("withdrawal blocks settlement changes", func(t *testing.T) {
		seller := newApprovedActiveSeller(t)
		require.NoError(t, seller.Withdraw())

		err := seller.UpdateSettlementAccount(banks, "004", "110123456789", "Dana Choi")
		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyWithdrawn)
	})
}

func TestSellerListingEligibility(t *testing.T) {
	seller := newApprovedActiveSeller(t)
	require.NoError(t, seller.EnsureCanRegisterListing())

	require.NoError(t, seller.Suspend())
	assert.False(t, seller.CanRegisterListing())
	assert.ErrorIs(t, seller.EnsureCanRegisterListing(), apperrors.ErrCannotRegisterListing)

	require.NoError(t, seller.Activate())
	assert.True(t, seller.CanRegisterListing())
}

func TestRestoreSeller(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	account := RestoreAccount(id, "seller@example.com", RestoreProfile("Dana Choi", "01055554444"), StatusActive, now, now)
	registration := RestoreBusinessRegistration("Festival Tickets Co.", "1234567890", "Dana Choi", Address{})
	settlement := RestoreSettlementAccount("004", "110123456789", "Dana Choi")
	approvedAt := now.Add(-time.Hour)

	seller := RestoreSeller(account, registration, settlement, ApprovalApproved, &approvedAt, "reviewer-1", "")

	assert.Equal(t, id, seller.ID())
	assert.True(t, seller.IsApproved())
	assert.Equal(t, "reviewer-1", seller.ApprovedBy())
	assert.True(t, seller.CanRegisterListing())
}
