package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "tickatch/internal/domain/errors"
)

// Seller is a vendor account. On top of the shared lifecycle it carries the
// registration review workflow: a seller is created PENDING, is approved or
// rejected exactly once, and only an approved seller may configure payouts
// or register listings.
type Seller struct {
	Account
	registration   BusinessRegistration
	settlement     SettlementAccount
	approval       ApprovalStatus
	approvedAt     *time.Time
	approvedBy     string
	rejectedReason string
}

// NewSeller validates and assembles a fresh seller in ACTIVE account state
// and PENDING approval state, with an empty settlement account.
func NewSeller(id uuid.UUID, email, name, phone string, registration BusinessRegistration) (*Seller, error) {
	profile, err := NewProfile(name, phone)
	if err != nil {
		return nil, err
	}

	return &Seller{
		Account:      newAccount(id, email, profile),
		registration: registration,
		settlement:   EmptySettlementAccount(),
		approval:     ApprovalPending,
	}, nil
}

// RestoreSeller rebuilds a seller from persistence.
func RestoreSeller(
	account Account,
	registration BusinessRegistration,
	settlement SettlementAccount,
	approval ApprovalStatus,
	approvedAt *time.Time,
	approvedBy string,
	rejectedReason string,
) *Seller {
	return &Seller{
		Account:        account,
		registration:   registration,
		settlement:     settlement,
		approval:       approval,
		approvedAt:     approvedAt,
		approvedBy:     approvedBy,
		rejectedReason: rejectedReason,
	}
}

// Registration returns the business registration.
func (s *Seller) Registration() BusinessRegistration {
	return s.registration
}

// Settlement returns the settlement account, zero until configured.
func (s *Seller) Settlement() SettlementAccount {
	return s.settlement
}

// Approval returns the review state.
func (s *Seller) Approval() ApprovalStatus {
	return s.approval
}

// ApprovedAt returns when the seller was approved, nil unless approved.
func (s *Seller) ApprovedAt() *time.Time {
	return s.approvedAt
}

// ApprovedBy returns the approver identity, empty unless approved.
func (s *Seller) ApprovedBy() string {
	return s.approvedBy
}

// RejectedReason returns the rejection reason, empty unless rejected.
func (s *Seller) RejectedReason() string {
	return s.rejectedReason
}

// IsPending reports whether the seller awaits review.
func (s *Seller) IsPending() bool {
	return s.approval.IsPending()
}

// IsApproved reports whether the seller has been approved.
func (s *Seller) IsApproved() bool {
	return s.approval.IsApproved()
}

// IsRejected reports whether the seller has been rejected.
func (s *Seller) IsRejected() bool {
	return s.approval.IsRejected()
}

// Approve accepts a pending application, recording when and by whom. Any
// rejection reason from a prior state is cleared.
func (s *Seller) Approve(approvedBy string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}

	next, err := s.approval.Transition(EventApprove)
	if err != nil {
		return err
	}

	now := time.Now()
	s.approval = next
	s.approvedAt = &now
	s.approvedBy = approvedBy
	s.rejectedReason = ""

	return nil
}

// Reject declines a pending application with a required reason. Approval
// metadata is cleared.
func (s *Seller) Reject(reason string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if _, err := s.approval.Transition(EventReject); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return apperrors.ErrInvalidRejectionReason
	}

	s.approval = ApprovalRejected
	s.rejectedReason = reason
	s.approvedAt = nil
	s.approvedBy = ""

	return nil
}

// UpdateBusinessInfo replaces the business registration. There is no
// approval gate: a rejected seller may amend and re-submit its registration,
// which does not by itself re-open the review.
func (s *Seller) UpdateBusinessInfo(businessName, businessNumber, representativeName string, businessAddress Address) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}

	registration, err := s.registration.Update(businessName, businessNumber, representativeName, businessAddress)
	if err != nil {
		return err
	}
	s.registration = registration

	return nil
}

// UpdateSettlementAccount replaces the payout destination. Permitted only
// once approved; suspension does not block it, only withdrawal does.
func (s *Seller) UpdateSettlementAccount(banks BankDirectory, bankCode, accountNumber, accountHolder string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if !s.approval.CanUpdateSettlement() {
		return apperrors.ErrCannotUpdateSettlementBeforeApproval
	}

	settlement, err := s.settlement.Update(banks, bankCode, accountNumber, accountHolder)
	if err != nil {
		return err
	}
	s.settlement = settlement

	return nil
}

// CanRegisterListing reports whether this seller may put listings on sale:
// the account must be ACTIVE and the application APPROVED.
func (s *Seller) CanRegisterListing() bool {
	return s.IsActive() && s.approval.CanRegisterListing()
}

// EnsureCanRegisterListing is the assertive form of CanRegisterListing.
func (s *Seller) EnsureCanRegisterListing() error {
	if !s.CanRegisterListing() {
		return apperrors.ErrCannotRegisterListing
	}

	return nil
}
