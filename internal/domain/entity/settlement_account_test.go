package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tickatch/internal/domain/errors"
)

func testBanks() BankDirectory {
	return NewBankDirectory("004", "088", "110")
}

func TestNewSettlementAccount(t *testing.T) {
	t.Run("valid account normalizes number", func(t *testing.T) {
		account, err := NewSettlementAccount(testBanks(), "004", "110-123-456789", "Dana Choi")

		require.NoError(t, err)
		assert.Equal(t, "004", account.BankCode())
		assert.Equal(t, "110123456789", account.AccountNumber())
		assert.Equal(t, "Dana Choi", account.AccountHolder())
		assert.True(t, account.IsComplete())
	})

	t.Run("unknown bank code rejected", func(t *testing.T) {
		_, err := NewSettlementAccount(testBanks(), "999", "110123456789", "Dana Choi")

		assert.ErrorIs(t, err, apperrors.ErrInvalidBankCode)
	})

	t.Run("blank bank code rejected", func(t *testing.T) {
		_, err := NewSettlementAccount(testBanks(), " ", "110123456789", "Dana Choi")

		assert.ErrorIs(t, err, apperrors.ErrInvalidBankCode)
	})

	t.Run("malformed account number rejected", func(t *testing.T) {
		for _, number := range []string{"", "123", "123456789012345", "11012345678a"} {
			_, err := NewSettlementAccount(testBanks(), "004", number, "Dana Choi")

			assert.ErrorIs(t, err, apperrors.ErrInvalidAccountNumber, "number %q", number)
		}
	})

	t.Run("blank holder rejected", func(t *testing.T) {
		_, err := NewSettlementAccount(testBanks(), "004", "110123456789", "  ")

		assert.ErrorIs(t, err, apperrors.ErrInvalidAccountHolder)
	})

	t.Run("holder over limit rejected", func(t *testing.T) {
		_, err := NewSettlementAccount(testBanks(), "004", "110123456789", strings.Repeat("a", 101))

		assert.ErrorIs(t, err, apperrors.ErrInvalidAccountHolder)
	})
}

func TestEmptySettlementAccount(t *testing.T) {
	account := EmptySettlementAccount()

	assert.True(t, account.IsZero())
	assert.False(t, account.IsComplete())
}

func TestMaskedAccountNumber(t *testing.T) {
	account := RestoreSettlementAccount("004", "110123456789", "Dana Choi")

	assert.Equal(t, "1101********", account.MaskedAccountNumber())

	short := RestoreSettlementAccount("004", "110", "Dana Choi")
	assert.Equal(t, "110", short.MaskedAccountNumber())
}

func TestBankDirectory(t *testing.T) {
	t.Run("explicit codes", func(t *testing.T) {
		banks := NewBankDirectory("004", "088")

		assert.True(t, banks.Contains("004"))
		assert.False(t, banks.Contains("110"))
		assert.Equal(t, 2, banks.Len())
	})

	t.Run("defaults when no codes given", func(t *testing.T) {
		banks := NewBankDirectory()

		assert.Positive(t, banks.Len())
	})
}
