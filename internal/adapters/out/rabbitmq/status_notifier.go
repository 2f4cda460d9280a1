// Package rabbitmq provides the AMQP implementation of the status change
// notifier. Messages are published to a durable queue through the default
// exchange with persistent delivery, so notifications survive a broker
// restart. Delivery is at-least-once; consumers must be idempotent.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// statusChangedMessage is the wire shape consumers depend on.
type statusChangedMessage struct {
	ClientID int64  `json:"clientId"`
	OrderID  int64  `json:"commandeId"`
	Status   string `json:"status"`
}

// StatusNotifier publishes order status change events to a durable queue.
// The connection is dialed lazily on first publish and re-dialed after the
// broker drops it, so a broker outage at startup does not block the service.
type StatusNotifier struct {
	url       string
	queueName string
	logger    *slog.Logger

	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
	closed  bool
}

// NewStatusNotifier creates a notifier for the given broker URL and queue.
// No connection is made until the first publish.
func NewStatusNotifier(url, queueName string, logger *slog.Logger) *StatusNotifier {
	return &StatusNotifier{
		url:       url,
		queueName: queueName,
		logger:    logger.With("component", "status_notifier"),
	}
}

// PublishStatusChange publishes one status change event.
// The message body is a JSON document with the client id, the order id and
// the new status wire string.
func (n *StatusNotifier) PublishStatusChange(
	ctx context.Context,
	id kernel.OrderID,
	clientID kernel.ClientID,
	status order.Status,
) error {
	if err := status.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(statusChangedMessage{
		ClientID: clientID.Int64(),
		OrderID:  id.Int64(),
		Status:   status.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal status change message: %w", err)
	}

	channel, err := n.ensureChannel(ctx)
	if err != nil {
		return err
	}

	err = channel.PublishWithContext(
		ctx,
		"",          // default exchange
		n.queueName, // routing key is the queue name
		false,       // mandatory
		false,       // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish status change message: %w", err)
	}

	n.logger.DebugContext(ctx, "status change published",
		"order_id", id.Int64(),
		"status", status.String())

	return nil
}

// Close shuts the channel and connection down. Publishing after Close fails.
func (n *StatusNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true

	if n.channel != nil {
		if err := n.channel.Close(); err != nil {
			return fmt.Errorf("error closing channel: %w", err)
		}
		n.channel = nil
	}

	if n.conn != nil {
		if err := n.conn.Close(); err != nil {
			return fmt.Errorf("error closing connection: %w", err)
		}
		n.conn = nil
	}

	return nil
}

// ensureChannel returns a live channel, dialing the broker and declaring the
// queue when needed.
func (n *StatusNotifier) ensureChannel(ctx context.Context) (*amqp091.Channel, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return nil, amqp091.ErrClosed
	}

	if n.channel != nil && !n.channel.IsClosed() {
		return n.channel, nil
	}

	if n.conn == nil || n.conn.IsClosed() {
		conn, err := amqp091.Dial(n.url)
		if err != nil {
			return nil, fmt.Errorf("failed to dial broker: %w", err)
		}
		n.conn = conn

		go n.watchConnection(ctx, conn)
	}

	channel, err := n.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		n.queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", n.queueName, err)
	}

	n.channel = channel
	n.logger.InfoContext(ctx, "connected to broker", "queue", n.queueName)

	return n.channel, nil
}

// watchConnection logs unexpected connection drops. The next publish
// re-dials; no background reconnect loop is needed for a publisher.
func (n *StatusNotifier) watchConnection(ctx context.Context, conn *amqp091.Connection) {
	closed := conn.NotifyClose(make(chan *amqp091.Error, 1))

	err, ok := <-closed
	if !ok || err == nil {
		return
	}

	n.mu.Lock()
	graceful := n.closed
	n.mu.Unlock()

	if !graceful {
		n.logger.WarnContext(ctx, "broker connection closed unexpectedly", "error", err)
	}
}
