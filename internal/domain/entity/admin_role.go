package entity

// AdminRole is the ranked administrator permission level.
type AdminRole string

const (
	// RoleManager is the first-tier operational role.
	RoleManager AdminRole = "MANAGER"
	// RoleAdmin is the second-tier role with full administrative rights.
	RoleAdmin AdminRole = "ADMIN"
)

// adminRoleLevels ranks the roles; permission checks compare levels, never
// the names.
var adminRoleLevels = map[AdminRole]int{
	RoleManager: 1,
	RoleAdmin:   2,
}

// Level returns the numeric rank of the role, 0 for an unknown role.
func (r AdminRole) Level() int {
	return adminRoleLevels[r]
}

// String returns the string representation of the role.
func (r AdminRole) String() string {
	return string(r)
}

// IsValid checks if the AdminRole is a valid value.
func (r AdminRole) IsValid() bool {
	_, ok := adminRoleLevels[r]

	return ok
}

// IsAdmin reports whether the role is ADMIN.
func (r AdminRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsManager reports whether the role is MANAGER.
func (r AdminRole) IsManager() bool {
	return r == RoleManager
}

// HasAtLeast reports whether the role ranks at or above required.
func (r AdminRole) HasAtLeast(required AdminRole) bool {
	return r.Level() >= required.Level()
}

// CanCreateAdmin reports whether the role may create administrators.
func (r AdminRole) CanCreateAdmin() bool {
	return r == RoleAdmin
}

// CanChangeRole reports whether the role may change another admin's role.
func (r AdminRole) CanChangeRole() bool {
	return r == RoleAdmin
}

// CanApproveSeller reports whether the role may review seller applications.
func (r AdminRole) CanApproveSeller() bool {
	return r.HasAtLeast(RoleManager)
}

// CanSuspendUser reports whether the role may suspend platform users.
func (r AdminRole) CanSuspendUser() bool {
	return r.HasAtLeast(RoleManager)
}
