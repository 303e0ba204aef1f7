// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"tickatch/internal/domain/service"
)

// publishActivity ships an audit event after a command completes. Activity
// logging is best-effort: a delivery failure is recorded and swallowed so it
// never changes the command outcome.
func publishActivity(ctx context.Context, pub service.ActivityLogPublisher, logger *slog.Logger, event *service.ActivityEvent) {
	if err := pub.PublishActivity(ctx, event); err != nil {
		logger.Warn("failed to publish activity event",
			"action", event.Action,
			"userID", event.UserID,
			"error", err,
		)
	}
}
