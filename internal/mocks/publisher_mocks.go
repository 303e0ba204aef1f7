package mocks

import (
	"context"

	"tickatch/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// StatusEventPublisher is a mock implementation of
// service.StatusEventPublisher.
type StatusEventPublisher struct {
	mock.Mock
}

func (m *StatusEventPublisher) PublishStatusChanged(ctx context.Context, event *service.StatusEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *StatusEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

// ActivityLogPublisher is a mock implementation of
// service.ActivityLogPublisher.
type ActivityLogPublisher struct {
	mock.Mock
}

func (m *ActivityLogPublisher) PublishActivity(ctx context.Context, event *service.ActivityEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *ActivityLogPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
