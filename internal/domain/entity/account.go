package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity and lifecycle shared by every account kind. It is
// embedded by the three aggregates rather than inherited; the identifier is
// issued by the external identity provider and never generated here.
type Account struct {
	id        uuid.UUID
	email     string
	profile   Profile
	status    AccountStatus
	createdAt time.Time
	updatedAt time.Time
}

// newAccount assembles the shared part of a fresh aggregate. Every account
// starts ACTIVE.
func newAccount(id uuid.UUID, email string, profile Profile) Account {
	return Account{
		id:      id,
		email:   email,
		profile: profile,
		status:  StatusActive,
	}
}

// RestoreAccount rebuilds the shared account state from persistence. It
// performs no validation; stored state is assumed to have passed the
// factories when it was written.
func RestoreAccount(id uuid.UUID, email string, profile Profile, status AccountStatus, createdAt, updatedAt time.Time) Account {
	return Account{
		id:        id,
		email:     email,
		profile:   profile,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the externally issued account identifier.
func (a *Account) ID() uuid.UUID {
	return a.id
}

// Email returns the lookup email. Immutable after creation.
func (a *Account) Email() string {
	return a.email
}

// Profile returns the current profile value.
func (a *Account) Profile() Profile {
	return a.profile
}

// Status returns the lifecycle status.
func (a *Account) Status() AccountStatus {
	return a.status
}

// CreatedAt returns the persistence-managed creation timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the persistence-managed modification timestamp.
func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

// IsActive reports whether the account is ACTIVE.
func (a *Account) IsActive() bool {
	return a.status.IsActive()
}

// IsSuspended reports whether the account is SUSPENDED.
func (a *Account) IsSuspended() bool {
	return a.status.IsSuspended()
}

// IsWithdrawn reports whether the account is WITHDRAWN.
func (a *Account) IsWithdrawn() bool {
	return a.status.IsWithdrawn()
}

// Suspend freezes an active account. Fails when already suspended or
// withdrawn.
func (a *Account) Suspend() error {
	return a.apply(EventSuspend)
}

// Activate lifts a suspension. Fails when already active or withdrawn.
func (a *Account) Activate() error {
	return a.apply(EventActivate)
}

// Withdraw terminates the account. Valid from ACTIVE and SUSPENDED.
func (a *Account) Withdraw() error {
	return a.apply(EventWithdraw)
}

// UpdateProfile replaces the profile with a freshly validated value.
// Permitted from any non-terminal state.
func (a *Account) UpdateProfile(name, phone string) error {
	if err := a.ensureMutable(); err != nil {
		return err
	}

	profile, err := a.profile.Update(name, phone)
	if err != nil {
		return err
	}
	a.profile = profile

	return nil
}

func (a *Account) apply(ev LifecycleEvent) error {
	next, err := a.status.Transition(ev)
	if err != nil {
		return err
	}
	a.status = next

	return nil
}

// ensureMutable rejects mutation of a withdrawn account.
func (a *Account) ensureMutable() error {
	_, err := a.status.Transition(EventMutate)

	return err
}
