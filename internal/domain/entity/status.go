// Package entity contains the account aggregates and value objects of the
// user service. Aggregates are mutated only through their methods; value
// objects are immutable and constructed through validating factories.
package entity

import (
	apperrors "tickatch/internal/domain/errors"
)

// AccountStatus represents the shared account lifecycle state.
type AccountStatus string

const (
	// StatusActive is the initial state of every account.
	StatusActive AccountStatus = "ACTIVE"
	// StatusSuspended is a reversible administrative freeze.
	StatusSuspended AccountStatus = "SUSPENDED"
	// StatusWithdrawn is terminal. No transition leaves it.
	StatusWithdrawn AccountStatus = "WITHDRAWN"
)

// LifecycleEvent is an input to the account lifecycle state machine.
type LifecycleEvent string

const (
	// EventSuspend freezes an active account.
	EventSuspend LifecycleEvent = "suspend"
	// EventActivate lifts a suspension.
	EventActivate LifecycleEvent = "activate"
	// EventWithdraw terminates the account. Soft delete; rows are never removed.
	EventWithdraw LifecycleEvent = "withdraw"
	// EventMutate is any non-transition mutation (profile edits and the like),
	// permitted from every non-terminal state.
	EventMutate LifecycleEvent = "mutate"
)

// lifecycleTransitions declares the full allowed-transition set in one place
// so it can be validated exhaustively instead of re-derived from scattered
// predicates. Events absent for a state are rejected.
var lifecycleTransitions = map[AccountStatus]map[LifecycleEvent]AccountStatus{
	StatusActive: {
		EventSuspend:  StatusSuspended,
		EventWithdraw: StatusWithdrawn,
		EventMutate:   StatusActive,
	},
	StatusSuspended: {
		EventActivate: StatusActive,
		EventWithdraw: StatusWithdrawn,
		EventMutate:   StatusSuspended,
	},
	StatusWithdrawn: {},
}

// lifecycleRejections maps the state an invalid event found the account in to
// the error reported for it.
var lifecycleRejections = map[AccountStatus]*apperrors.BaseError{
	StatusActive:    apperrors.ErrUserAlreadyActive,
	StatusSuspended: apperrors.ErrUserAlreadySuspended,
	StatusWithdrawn: apperrors.ErrUserAlreadyWithdrawn,
}

// Transition applies ev to s, returning the next state or the rejection for
// the current state.
func (s AccountStatus) Transition(ev LifecycleEvent) (AccountStatus, error) {
	next, ok := lifecycleTransitions[s][ev]
	if !ok {
		return s, lifecycleRejections[s]
	}

	return next, nil
}

// CanApply reports whether ev is a declared transition from s.
func (s AccountStatus) CanApply(ev LifecycleEvent) bool {
	_, ok := lifecycleTransitions[s][ev]

	return ok
}

// IsActive reports whether the status is ACTIVE.
func (s AccountStatus) IsActive() bool {
	return s == StatusActive
}

// IsSuspended reports whether the status is SUSPENDED.
func (s AccountStatus) IsSuspended() bool {
	return s == StatusSuspended
}

// IsWithdrawn reports whether the status is WITHDRAWN.
func (s AccountStatus) IsWithdrawn() bool {
	return s == StatusWithdrawn
}

// IsTerminal reports whether no further transition is permitted.
func (s AccountStatus) IsTerminal() bool {
	return s == StatusWithdrawn
}

// String returns the string representation of the status.
func (s AccountStatus) String() string {
	return string(s)
}

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusWithdrawn:
		return true
	default:
		return false
	}
}
