package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tickatch/internal/domain/errors"
)

func TestNewBusinessRegistration(t *testing.T) {
	address, err := NewAddress("04524", "100 Sejong-daero", "3F")
	require.NoError(t, err)

	t.Run("valid registration normalizes number", func(t *testing.T) {
		registration, err := NewBusinessRegistration("Festival Tickets Co.", "123-45-67890", "Dana Choi", address)

		require.NoError(t, err)
		assert.Equal(t, "Festival Tickets Co.", registration.BusinessName())
		assert.Equal(t, "1234567890", registration.BusinessNumber())
		assert.Equal(t, "Dana Choi", registration.RepresentativeName())
		assert.Equal(t, "123-45-67890", registration.FormattedNumber())
	})

	t.Run("address is optional", func(t *testing.T) {
		registration, err := NewBusinessRegistration("Festival Tickets Co.", "1234567890", "Dana Choi", Address{})

		require.NoError(t, err)
		assert.True(t, registration.BusinessAddress().IsZero())
	})

	t.Run("blank business name rejected", func(t *testing.T) {
		_, err := NewBusinessRegistration("  ", "1234567890", "Dana Choi", Address{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidBusinessName)
	})

	t.Run("business name over limit rejected", func(t *testing.T) {
		_, err := NewBusinessRegistration(strings.Repeat("a", 201), "1234567890", "Dana Choi", Address{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidBusinessName)
	})

	t.Run("malformed business number rejected", func(t *testing.T) {
		for _, number := range []string{"", "12345", "12345678901", "12-3456-789a"} {
			_, err := NewBusinessRegistration("Festival Tickets Co.", number, "Dana Choi", Address{})

			assert.ErrorIs(t, err, apperrors.ErrInvalidBusinessNumber, "number %q", number)
		}
	})

	t.Run("blank representative rejected", func(t *testing.T) {
		_, err := NewBusinessRegistration("Festival Tickets Co.", "1234567890", " ", Address{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidRepresentativeName)
	})
}

func TestFormattedNumberLeavesOddLengthsAlone(t *testing.T) {
	registration := RestoreBusinessRegistration("Festival Tickets Co.", "12345", "Dana Choi", Address{})

	assert.Equal(t, "12345", registration.FormattedNumber())
}

func TestNewAddress(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		address, err := NewAddress("04524", "100 Sejong-daero", "3F")

		require.NoError(t, err)
		assert.Equal(t, "04524", address.ZipCode())
		assert.Equal(t, "100 Sejong-daero", address.Address1())
		assert.Equal(t, "3F", address.Address2())
		assert.False(t, address.IsZero())
	})

	t.Run("zero address", func(t *testing.T) {
		address, err := NewAddress("", "", "")

		require.NoError(t, err)
		assert.True(t, address.IsZero())
	})

	t.Run("first line required once any field set", func(t *testing.T) {
		_, err := NewAddress("04524", "", "3F")

		assert.ErrorIs(t, err, apperrors.ErrInvalidAddress)
	})
}

func TestAddressFullAddress(t *testing.T) {
	address, err := NewAddress("04524", "100 Sejong-daero", "3F")
	require.NoError(t, err)

	assert.Equal(t, "(04524) 100 Sejong-daero 3F", address.FullAddress())
	assert.Empty(t, EmptyAddress().FullAddress())
}
