package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Action names one user activity worth auditing. Failed attempts record an
// action too, with the failure reason carried in the event detail.
type Action string

const (
	ActionCustomerCreated        Action = "CUSTOMER_CREATED"
	ActionCustomerCreateFailed   Action = "CUSTOMER_CREATE_FAILED"
	ActionCustomerUpdated        Action = "CUSTOMER_UPDATED"
	ActionCustomerUpdateFailed   Action = "CUSTOMER_UPDATE_FAILED"
	ActionCustomerSuspended      Action = "CUSTOMER_SUSPENDED"
	ActionCustomerSuspendFailed  Action = "CUSTOMER_SUSPEND_FAILED"
	ActionCustomerActivated      Action = "CUSTOMER_ACTIVATED"
	ActionCustomerActivateFailed Action = "CUSTOMER_ACTIVATE_FAILED"
	ActionCustomerWithdrawn      Action = "CUSTOMER_WITHDRAWN"
	ActionCustomerWithdrawFailed Action = "CUSTOMER_WITHDRAW_FAILED"

	ActionSellerCreated          Action = "SELLER_CREATED"
	ActionSellerCreateFailed     Action = "SELLER_CREATE_FAILED"
	ActionSellerUpdated          Action = "SELLER_UPDATED"
	ActionSellerUpdateFailed     Action = "SELLER_UPDATE_FAILED"
	ActionSellerApproved         Action = "SELLER_APPROVED"
	ActionSellerApproveFailed    Action = "SELLER_APPROVE_FAILED"
	ActionSellerRejected         Action = "SELLER_REJECTED"
	ActionSellerRejectFailed     Action = "SELLER_REJECT_FAILED"
	ActionSellerSettlementChange Action = "SELLER_SETTLEMENT_UPDATED"
	ActionSellerSuspended        Action = "SELLER_SUSPENDED"
	ActionSellerSuspendFailed    Action = "SELLER_SUSPEND_FAILED"
	ActionSellerActivated        Action = "SELLER_ACTIVATED"
	ActionSellerActivateFailed   Action = "SELLER_ACTIVATE_FAILED"
	ActionSellerWithdrawn        Action = "SELLER_WITHDRAWN"
	ActionSellerWithdrawFailed   Action = "SELLER_WITHDRAW_FAILED"

	ActionAdminCreated        Action = "ADMIN_CREATED"
	ActionAdminCreateFailed   Action = "ADMIN_CREATE_FAILED"
	ActionAdminUpdated        Action = "ADMIN_UPDATED"
	ActionAdminUpdateFailed   Action = "ADMIN_UPDATE_FAILED"
	ActionAdminRoleChanged    Action = "ADMIN_ROLE_CHANGED"
	ActionAdminSuspended      Action = "ADMIN_SUSPENDED"
	ActionAdminSuspendFailed  Action = "ADMIN_SUSPEND_FAILED"
	ActionAdminActivated      Action = "ADMIN_ACTIVATED"
	ActionAdminActivateFailed Action = "ADMIN_ACTIVATE_FAILED"
	ActionAdminWithdrawn      Action = "ADMIN_WITHDRAWN"
	ActionAdminWithdrawFailed Action = "ADMIN_WITHDRAW_FAILED"
)

// ActivityEvent is an audit record of something a user did or attempted.
// Activity publishing is best-effort: the command outcome never depends on it.
type ActivityEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	ActorID    string    `json:"actor_id,omitempty"`
	UserID     uuid.UUID `json:"user_id"`
	UserType   UserType  `json:"user_type"`
	Action     Action    `json:"action"`
	Detail     string    `json:"detail,omitempty"`
}

// NewActivityEvent builds an audit event stamped with a fresh identifier.
func NewActivityEvent(userID uuid.UUID, userType UserType, action Action, detail string) *ActivityEvent {
	return &ActivityEvent{
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		UserID:     userID,
		UserType:   userType,
		Action:     action,
		Detail:     detail,
	}
}

// WithActor records who performed the action when it differs from the subject.
func (e *ActivityEvent) WithActor(actorID string) *ActivityEvent {
	e.ActorID = actorID
	return e
}

// ActivityLogPublisher ships audit events to the activity pipeline.
type ActivityLogPublisher interface {
	// PublishActivity delivers the event. Errors are logged by callers and
	// otherwise ignored.
	PublishActivity(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
