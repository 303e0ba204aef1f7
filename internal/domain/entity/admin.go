package entity

import (
	"strings"

	"github.com/google/uuid"

	apperrors "tickatch/internal/domain/errors"
)

const maxDepartmentLength = 100

// Admin is a platform administrator. It shares the account lifecycle with
// the other kinds and adds the two-tier role hierarchy plus an optional
// department. Unlike Customer and Seller it was historically lax about
// repeat lifecycle transitions; here the strict shared guards apply
// uniformly.
type Admin struct {
	Account
	role       AdminRole
	department string
}

// NewAdmin validates and assembles a fresh administrator in ACTIVE state.
func NewAdmin(id uuid.UUID, email, name, phone, department string, role AdminRole) (*Admin, error) {
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidAdminRole
	}
	if err := validateDepartment(department); err != nil {
		return nil, err
	}

	profile, err := NewProfile(name, phone)
	if err != nil {
		return nil, err
	}

	return &Admin{
		Account:    newAccount(id, email, profile),
		role:       role,
		department: department,
	}, nil
}

// RestoreAdmin rebuilds an administrator from persistence.
func RestoreAdmin(account Account, role AdminRole, department string) *Admin {
	return &Admin{Account: account, role: role, department: department}
}

// Role returns the administrator's role.
func (a *Admin) Role() AdminRole {
	return a.role
}

// Department returns the optional department, empty when not set.
func (a *Admin) Department() string {
	return a.department
}

// IsAdmin reports whether the administrator holds the ADMIN role.
func (a *Admin) IsAdmin() bool {
	return a.role.IsAdmin()
}

// IsManager reports whether the administrator holds the MANAGER role.
func (a *Admin) IsManager() bool {
	return a.role.IsManager()
}

// HasPermission reports whether the administrator's role ranks at or above
// required.
func (a *Admin) HasPermission(required AdminRole) bool {
	return a.role.HasAtLeast(required)
}

// CanCreateAdmin reports whether this administrator may create others.
func (a *Admin) CanCreateAdmin() bool {
	return a.role.CanCreateAdmin()
}

// CanChangeRole reports whether this administrator may change roles.
func (a *Admin) CanChangeRole() bool {
	return a.role.CanChangeRole()
}

// CanApproveSeller reports whether this administrator may review sellers.
func (a *Admin) CanApproveSeller() bool {
	return a.role.CanApproveSeller()
}

// CanSuspendUser reports whether this administrator may suspend users.
func (a *Admin) CanSuspendUser() bool {
	return a.role.CanSuspendUser()
}

// UpdateProfile replaces name, phone and department after validation. The
// terminal-state guard runs before any field validation.
func (a *Admin) UpdateProfile(name, phone, department string) error {
	if err := a.ensureMutable(); err != nil {
		return err
	}
	if err := validateDepartment(department); err != nil {
		return err
	}
	if err := a.Account.UpdateProfile(name, phone); err != nil {
		return err
	}
	a.department = department

	return nil
}

// ChangeRole sets the role to newRole. Only an ADMIN actor may change roles,
// and never their own; the new role is applied exactly as requested.
func (a *Admin) ChangeRole(newRole AdminRole, actor *Admin) error {
	if err := a.ensureMutable(); err != nil {
		return err
	}
	if !newRole.IsValid() {
		return apperrors.ErrInvalidAdminRole
	}
	if !actor.CanChangeRole() {
		return apperrors.ErrOnlyAdminCanChangeRole
	}
	if a.ID() == actor.ID() {
		return apperrors.ErrCannotChangeOwnRole
	}
	a.role = newRole

	return nil
}

func validateDepartment(department string) error {
	if strings.TrimSpace(department) == "" {
		return nil // optional
	}
	if len([]rune(department)) > maxDepartmentLength {
		return apperrors.ErrInvalidDepartment
	}

	return nil
}
