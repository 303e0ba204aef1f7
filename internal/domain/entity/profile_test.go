package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tickatch/internal/domain/errors"
)

func TestNewProfile(t *testing.T) {
	t.Run("valid profile normalizes phone", func(t *testing.T) {
		profile, err := NewProfile("Alice Kim", "010-1234-5678")

		require.NoError(t, err)
		assert.Equal(t, "Alice Kim", profile.Name())
		assert.Equal(t, "01012345678", profile.Phone())
	})

	t.Run("phone is optional", func(t *testing.T) {
		profile, err := NewProfile("Alice Kim", "")

		require.NoError(t, err)
		assert.Empty(t, profile.Phone())
	})

	t.Run("already normalized phone accepted", func(t *testing.T) {
		profile, err := NewProfile("Alice Kim", "01012345678")

		require.NoError(t, err)
		assert.Equal(t, "01012345678", profile.Phone())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := NewProfile("   ", "010-1234-5678")

		assert.ErrorIs(t, err, apperrors.ErrInvalidName)
	})

	t.Run("name over 50 characters rejected", func(t *testing.T) {
		_, err := NewProfile(strings.Repeat("a", 51), "")

		assert.ErrorIs(t, err, apperrors.ErrInvalidName)
	})

	t.Run("malformed phone rejected", func(t *testing.T) {
		for _, phone := range []string{"1234", "02-123-4567", "010-12-34"} {
			_, err := NewProfile("Alice Kim", phone)

			assert.ErrorIs(t, err, apperrors.ErrInvalidPhone, "phone %q", phone)
		}
	})
}

func TestProfileUpdateDoesNotMutateReceiver(t *testing.T) {
	original, err := NewProfile("Alice Kim", "010-1234-5678")
	require.NoError(t, err)

	updated, err := original.Update("Bora Lee", "010-9999-8888")
	require.NoError(t, err)

	assert.Equal(t, "Alice Kim", original.Name())
	assert.Equal(t, "Bora Lee", updated.Name())
	assert.Equal(t, "01099998888", updated.Phone())
}

func TestRestoreProfileSkipsValidation(t *testing.T) {
	// Stored state is trusted as written, even when it would fail the factory.
	profile := RestoreProfile("", "not-a-phone")

	assert.Empty(t, profile.Name())
	assert.Equal(t, "not-a-phone", profile.Phone())
}
