// Package service holds the abstract contracts the domain depends on but
// does not implement: status-change and activity-log event publishing.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserType tags which account kind an event concerns.
type UserType string

const (
	// UserTypeCustomer tags customer events.
	UserTypeCustomer UserType = "CUSTOMER"
	// UserTypeSeller tags seller events.
	UserTypeSeller UserType = "SELLER"
	// UserTypeAdmin tags administrator events.
	UserTypeAdmin UserType = "ADMIN"
)

// StatusEvent notifies other bounded contexts that an account's lifecycle
// status changed, e.g. so the identity provider can revoke sessions on
// withdrawal. Delivery failure fails the triggering command.
type StatusEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	UserID     uuid.UUID `json:"user_id"`
	UserType   UserType  `json:"user_type"`
	Change     string    `json:"status_change_type"`
	RoutingKey string    `json:"routing_key"`
}

func newStatusEvent(userID uuid.UUID, userType UserType, change, routingKey string) *StatusEvent {
	return &StatusEvent{
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		UserID:     userID,
		UserType:   userType,
		Change:     change,
		RoutingKey: routingKey,
	}
}

// CustomerWithdrawn builds the status event for a customer withdrawal.
func CustomerWithdrawn(id uuid.UUID) *StatusEvent {
	return newStatusEvent(id, UserTypeCustomer, "WITHDRAWN", "customer.withdrawn")
}

// CustomerSuspended builds the status event for a customer suspension.
func CustomerSuspended(id uuid.UUID) *StatusEvent {
	return newStatusEvent(id, UserTypeCustomer, "SUSPENDED", "customer.suspended")
}

// CustomerActivated builds the status event for a customer reactivation.
func CustomerActivated(id uuid.UUID) *StatusEvent {
	return newStatusEvent(id, UserTypeCustomer, "ACTIVATED", "customer.activated")
}

// SellerWithdrawn builds the status event for a seller withdrawal.
func SellerWithdrawn(id uuid.UUID) *StatusEvent {
	return newStatusEvent(id, UserTypeSeller, "WITHDRAWN", "seller.withdrawn")
}

// SellerSuspended builds the status event for a seller suspension.
func SellerSuspended(id uuid.UUID) *StatusEvent {
	return newStatusEvent(id, UserTypeSeller, "SUSPENDED", "seller.suspended")
}

// SellerActivated builds the status event for a seller reactivation.
func SellerActivated(id uuid.UUID) *StatusEvent {
	return newStatusEvent(id, UserTypeSeller, "ACTIVATED", "seller.activated")
}

// AdminWithdrawn builds the status event for an administrator withdrawal.
func AdminWithdrawn(id uuid.UUID) *StatusEvent {
	return newStatusEvent(id, UserTypeAdmin, "WITHDRAWN", "admin.withdrawn")
}

// AdminSuspended builds the status event for an administrator suspension.
func AdminSuspended(id uuid.UUID) *StatusEvent {
	return newStatusEvent(id, UserTypeAdmin, "SUSPENDED", "admin.suspended")
}

// AdminActivated builds the status event for an administrator reactivation.
func AdminActivated(id uuid.UUID) *StatusEvent {
	return newStatusEvent(id, UserTypeAdmin, "ACTIVATED", "admin.activated")
}

// StatusEventPublisher publishes lifecycle status changes to other bounded
// contexts. Implementations live in the infrastructure layer.
type StatusEventPublisher interface {
	// PublishStatusChanged delivers the event. An error here must fail the
	// command that produced the change.
	PublishStatusChanged(ctx context.Context, event *StatusEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
