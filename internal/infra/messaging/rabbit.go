// Package messaging implements the domain's event publisher contracts over
// RabbitMQ, with no-op fallbacks when no broker is configured.
package messaging

import (
	"context"
	"encoding/json"

	"tickatch/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitStatusPublisher ships status-change events to a topic exchange so
// other bounded contexts can bind per routing key.
type rabbitStatusPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewRabbitStatusPublisher dials the broker and declares the durable topic
// exchange.
func NewRabbitStatusPublisher(url, exchange string) (service.StatusEventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrap(err, "declare exchange")
	}

	return &rabbitStatusPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *rabbitStatusPublisher) PublishStatusChanged(ctx context.Context, event *service.StatusEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal status event")
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, event.RoutingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   event.EventID,
		Body:        body,
	})
	if err != nil {
		return errors.Wrap(err, "publish status event")
	}

	return nil
}

func (p *rabbitStatusPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}

	return nil
}

// rabbitActivityPublisher ships audit events to a single durable queue
// consumed by the activity pipeline.
type rabbitActivityPublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// NewRabbitActivityPublisher dials the broker and declares the durable
// activity queue.
func NewRabbitActivityPublisher(url, queue string) (service.ActivityLogPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open channel")
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrap(err, "declare queue")
	}

	return &rabbitActivityPublisher{conn: conn, ch: ch, queue: queue}, nil
}

func (p *rabbitActivityPublisher) PublishActivity(ctx context.Context, event *service.ActivityEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal activity event")
	}

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   event.EventID,
		Body:        body,
	})
	if err != nil {
		return errors.Wrap(err, "publish activity event")
	}

	return nil
}

func (p *rabbitActivityPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}

	return nil
}
