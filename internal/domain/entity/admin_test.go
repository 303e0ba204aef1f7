package entity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tickatch/internal/domain/errors"
)

func newTestAdminWithRole(t *testing.T, role AdminRole) *Admin {
	t.Helper()

	admin, err := NewAdmin(uuid.New(), "admin@example.com", "Bora Lee", "010-2222-3333", "Operations", role)
	require.NoError(t, err)

	return admin
}

func TestNewAdmin(t *testing.T) {
	t.Run("starts active", func(t *testing.T) {
		admin := newTestAdminWithRole(t, RoleManager)

		assert.Equal(t, StatusActive, admin.Status())
		assert.Equal(t, RoleManager, admin.Role())
		assert.Equal(t, "Operations", admin.Department())
	})

	t.Run("department is optional", func(t *testing.T) {
		admin, err := NewAdmin(uuid.New(), "admin@example.com", "Bora Lee", "", "", RoleAdmin)

		require.NoError(t, err)
		assert.Empty(t, admin.Department())
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := NewAdmin(uuid.New(), "admin@example.com", "Bora Lee", "", "", AdminRole("ROOT"))

		assert.ErrorIs(t, err, apperrors.ErrInvalidAdminRole)
	})

	t.Run("department over limit rejected", func(t *testing.T) {
		_, err := NewAdmin(uuid.New(), "admin@example.com", "Bora Lee", "", strings.Repeat("a", 101), RoleAdmin)

		assert.ErrorIs(t, err, apperrors.ErrInvalidDepartment)
	})
}

func TestAdminPermissions(t *testing.T) {
	admin := newTestAdminWithRole(t, RoleAdmin)
	manager := newTestAdminWithRole(t, RoleManager)

	assert.True(t, admin.CanCreateAdmin())
	assert.True(t, admin.CanChangeRole())
	assert.True(t, admin.CanApproveSeller())
	assert.True(t, admin.CanSuspendUser())
	assert.True(t, admin.HasPermission(RoleManager))

	assert.False(t, manager.CanCreateAdmin())
	assert.False(t, manager.CanChangeRole())
	assert.True(t, manager.CanApproveSeller())
	assert.True(t, manager.CanSuspendUser())
	assert.False(t, manager.HasPermission(RoleAdmin))
}

func TestAdminChangeRole(t *testing.T) {
	t.Run("admin actor promotes manager", func(t *testing.T) {
		actor := newTestAdminWithRole(t, RoleAdmin)
		target := newTestAdminWithRole(t, RoleManager)

		require.NoError(t, target.ChangeRole(RoleAdmin, actor))
		assert.True(t, target.IsAdmin())
	})

	t.Run("manager actor rejected", func(t *testing.T) {
		actor := newTestAdminWithRole(t, RoleManager)
		target := newTestAdminWithRole(t, RoleManager)

		assert.ErrorIs(t, target.ChangeRole(RoleAdmin, actor), apperrors.ErrOnlyAdminCanChangeRole)
	})

	t.Run("own role rejected", func(t *testing.T) {
		actor := newTestAdminWithRole(t, RoleAdmin)

		assert.ErrorIs(t, actor.ChangeRole(RoleManager, actor), apperrors.ErrCannotChangeOwnRole)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		actor := newTestAdminWithRole(t, RoleAdmin)
		target := newTestAdminWithRole(t, RoleManager)

		assert.ErrorIs(t, target.ChangeRole(AdminRole("ROOT"), actor), apperrors.ErrInvalidAdminRole)
	})

	t.Run("withdrawn target rejected", func(t *testing.T) {
		actor := newTestAdminWithRole(t, RoleAdmin)
		target := newTestAdminWithRole(t, RoleManager)
		require.NoError(t, target.Withdraw())

		assert.ErrorIs(t, target.ChangeRole(RoleAdmin, actor), apperrors.ErrUserAlreadyWithdrawn)
	})
}

func TestAdminLifecycleIsStrict(t *testing.T) {
	// Repeat transitions are rejected for administrators exactly as for the
	// other account kinds.
	admin := newTestAdminWithRole(t, RoleAdmin)

	require.NoError(t, admin.Suspend())
	assert.ErrorIs(t, admin.Suspend(), apperrors.ErrUserAlreadySuspended)

	require.NoError(t, admin.Activate())
	assert.ErrorIs(t, admin.Activate(), apperrors.ErrUserAlreadyActive)

	require.NoError(t, admin.Withdraw())
	assert.ErrorIs(t, admin.Withdraw(), apperrors.ErrUserAlreadyWithdrawn)
}

func TestAdminUpdateProfile(t *testing.T) {
	admin := newTestAdminWithRole(t, RoleManager)

	require.NoError(t, admin.UpdateProfile("Chan Park", "010-7777-6666", "Support"))
	assert.Equal(t, "Chan Park", admin.Profile().Name())
	assert.Equal(t, "01077776666", admin.Profile().Phone())
	assert.Equal(t, "Support", admin.Department())

	assert.ErrorIs(t, admin.UpdateProfile("", "", ""), apperrors.ErrInvalidName)
}

func TestAdminUpdateProfileWithdrawnGuardFirst(t *testing.T) {
	admin := newTestAdminWithRole(t, RoleManager)
	require.NoError(t, admin.Withdraw())

	// Terminal state wins over field validation: even an invalid department
	// must surface the withdrawn error.
	err := admin.UpdateProfile("Chan Park", "", strings.Repeat("a", 101))
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyWithdrawn)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidDepartment)
}
