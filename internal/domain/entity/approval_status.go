package entity

import (
	apperrors "tickatch/internal/domain/errors"
)

// ApprovalStatus is the seller registration review state.
type ApprovalStatus string

const (
	// ApprovalPending is the initial review state of every new seller.
	ApprovalPending ApprovalStatus = "PENDING"
	// ApprovalApproved is terminal; an approved seller is never re-reviewed.
	ApprovalApproved ApprovalStatus = "APPROVED"
	// ApprovalRejected is terminal; re-submission is a manual process.
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// ApprovalEvent is an input to the approval state machine.
type ApprovalEvent string

const (
	// EventApprove accepts a pending application.
	EventApprove ApprovalEvent = "approve"
	// EventReject declines a pending application.
	EventReject ApprovalEvent = "reject"
)

// approvalTransitions declares the review workflow in one table: both
// outcomes are reachable from PENDING only, and neither outcome ever
// transitions to the other.
var approvalTransitions = map[ApprovalStatus]map[ApprovalEvent]ApprovalStatus{
	ApprovalPending: {
		EventApprove: ApprovalApproved,
		EventReject:  ApprovalRejected,
	},
	ApprovalApproved: {},
	ApprovalRejected: {},
}

var approvalRejections = map[ApprovalStatus]*apperrors.BaseError{
	ApprovalApproved: apperrors.ErrSellerAlreadyApproved,
	ApprovalRejected: apperrors.ErrSellerAlreadyRejected,
}

// Transition applies ev to s, returning the next state or the rejection for
// the current state.
func (s ApprovalStatus) Transition(ev ApprovalEvent) (ApprovalStatus, error) {
	next, ok := approvalTransitions[s][ev]
	if !ok {
		if rejection, found := approvalRejections[s]; found {
			return s, rejection
		}

		return s, apperrors.ErrSellerNotPending
	}

	return next, nil
}

// IsPending reports whether the application awaits review.
func (s ApprovalStatus) IsPending() bool {
	return s == ApprovalPending
}

// IsApproved reports whether the application was accepted.
func (s ApprovalStatus) IsApproved() bool {
	return s == ApprovalApproved
}

// IsRejected reports whether the application was declined.
func (s ApprovalStatus) IsRejected() bool {
	return s == ApprovalRejected
}

// IsTerminal reports whether no further review transition is permitted.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

// CanUpdateSettlement reports whether the seller may configure payouts.
func (s ApprovalStatus) CanUpdateSettlement() bool {
	return s == ApprovalApproved
}

// CanRegisterListing reports whether the review state permits listings.
func (s ApprovalStatus) CanRegisterListing() bool {
	return s == ApprovalApproved
}

// String returns the string representation of the status.
func (s ApprovalStatus) String() string {
	return string(s)
}

// IsValid checks if the ApprovalStatus is a valid value.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}
