package messaging

import (
	"context"
	"log/slog"

	"tickatch/internal/domain/service"
)

// noopStatusPublisher drops events. Used when no broker is configured so the
// service still runs in local and test environments.
type noopStatusPublisher struct {
	logger *slog.Logger
}

func (p *noopStatusPublisher) PublishStatusChanged(_ context.Context, event *service.StatusEvent) error {
	p.logger.Debug("status event dropped, messaging disabled",
		slog.String("routingKey", event.RoutingKey),
		slog.String("userID", event.UserID.String()))

	return nil
}

func (p *noopStatusPublisher) Close() error { return nil }

type noopActivityPublisher struct {
	logger *slog.Logger
}

func (p *noopActivityPublisher) PublishActivity(_ context.Context, event *service.ActivityEvent) error {
	p.logger.Debug("activity event dropped, messaging disabled",
		slog.String("action", string(event.Action)),
		slog.String("userID", event.UserID.String()))

	return nil
}

func (p *noopActivityPublisher) Close() error { return nil }
