package messaging

import (
	"context"
	"log/slog"

	"tickatch/config"
	"tickatch/internal/domain/service"
	"tickatch/internal/errors"

	"go.uber.org/fx"
)

const (
	providerRabbitMQ = "rabbitmq"
	providerNoop     = "noop"

	defaultExchange      = "tickatch.user"
	defaultActivityQueue = "tickatch.user.activity"
)

// PublisherParams collects the dependencies for the event publishers.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStatusEventPublisher builds the configured status publisher. An empty
// provider falls back to the no-op implementation.
func NewStatusEventPublisher(params PublisherParams) (service.StatusEventPublisher, error) {
	cfg := params.Config.Messaging
	if cfg == nil || cfg.Provider == "" || cfg.Provider == providerNoop {
		params.Logger.Info("messaging provider not configured, status events disabled")

		return &noopStatusPublisher{logger: params.Logger}, nil
	}

	switch cfg.Provider {
	case providerRabbitMQ:
		exchange := cfg.Exchange
		if exchange == "" {
			exchange = defaultExchange
		}
		publisher, err := NewRabbitStatusPublisher(cfg.URL, exchange)
		if err != nil {
			return nil, errors.Wrap(err, "create rabbitmq status publisher")
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return publisher.Close()
			},
		})

		return publisher, nil
	default:
		return nil, errors.Errorf("unknown messaging provider: %s", cfg.Provider)
	}
}

// NewActivityLogPublisher builds the configured activity publisher. An empty
// provider falls back to the no-op implementation.
func NewActivityLogPublisher(params PublisherParams) (service.ActivityLogPublisher, error) {
	cfg := params.Config.Messaging
	if cfg == nil || cfg.Provider == "" || cfg.Provider == providerNoop {
		params.Logger.Info("messaging provider not configured, activity events disabled")

		return &noopActivityPublisher{logger: params.Logger}, nil
	}

	switch cfg.Provider {
	case providerRabbitMQ:
		queue := cfg.ActivityQueue
		if queue == "" {
			queue = defaultActivityQueue
		}
		publisher, err := NewRabbitActivityPublisher(cfg.URL, queue)
		if err != nil {
			return nil, errors.Wrap(err, "create rabbitmq activity publisher")
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return publisher.Close()
			},
		})

		return publisher, nil
	default:
		return nil, errors.Errorf("unknown messaging provider: %s", cfg.Provider)
	}
}

// Module provides the event publishers to the fx graph.
var Module = fx.Options(
	fx.Provide(NewStatusEventPublisher),
	fx.Provide(NewActivityLogPublisher),
)
