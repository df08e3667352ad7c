package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends allocation events to RabbitMQ, opening a connection per
// publish.  Errors are logged and returned so the caller can choose to
// ignore them.
type Publisher struct {
	url string
	log *slog.Logger
}

// NewPublisher returns a Publisher for the broker at url.
func NewPublisher(url string, log *slog.Logger) *Publisher {
	return &Publisher{url: url, log: log.With("component", "publisher")}
}

// PublishAllocationCompleted publishes event to the allocation.completed
// queue as a persistent JSON message.
func (p *Publisher) PublishAllocationCompleted(ctx context.Context, event AllocationCompletedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error("dial failed", "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error("channel open failed", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		AllocationCompletedQueue, // name
		true,                     // durable
		false,                    // autoDelete
		false,                    // exclusive
		false,                    // noWait
		nil,                      // args
	); err != nil {
		p.log.Error("queue declare failed", "error", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("marshal event failed", "error", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    event.AllocationID,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",                       // default exchange
		AllocationCompletedQueue, // routing key = queue name
		false,                    // mandatory
		false,                    // immediate
		pub,
	); err != nil {
		p.log.Error("publish failed", "error", err, "allocation_id", event.AllocationID)
		return err
	}
	p.log.Debug("event published", "allocation_id", event.AllocationID)
	return nil
}
