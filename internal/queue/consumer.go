package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer listens to the allocation.completed queue and appends one line
// per event to <dir>/allocation.log.
type Consumer struct {
	url string
	dir string
	log *slog.Logger
}

// NewConsumer returns a Consumer for the broker at url writing into dir.
func NewConsumer(url, dir string, log *slog.Logger) *Consumer {
	return &Consumer{url: url, dir: dir, log: log.With("component", "allocation-consumer")}
}

// Run connects, declares the durable queue and consumes until ctx is
// cancelled.  Broken connections are redialled with exponential backoff
// capped at 30s.  Run only returns ctx.Err().
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.Warn("failed to dial broker", "error", err, "retry_in", backoff)
			if err := sleep(ctx, backoff); err != nil {
				return err
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		err = c.consumeLoop(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn("consume loop ended, reconnecting", "error", err)
		if err := sleep(ctx, 2*time.Second); err != nil {
			return err
		}
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.log.Warn("set QoS failed", "error", err)
	}
	if _, err := ch.QueueDeclare(AllocationCompletedQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(AllocationCompletedQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.HandleMessage(d.Body); err != nil {
				c.log.Error("handle message failed", "error", err)
				_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// HandleMessage decodes one event and appends it to the allocation log.
func (c *Consumer) HandleMessage(body []byte) error {
	var ev AllocationCompletedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.AllocationID == "" {
		return errors.New("event without allocation_id")
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", c.dir, err)
	}
	f, err := os.OpenFile(filepath.Join(c.dir, "allocation.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(FormatLogLine(ev)); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// FormatLogLine renders ev as a single human-friendly line ending in "\n".
func FormatLogLine(ev AllocationCompletedEvent) string {
	labels := make([]string, 0, len(ev.Assignments))
	for label := range ev.Assignments {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return tableOrder(labels[i]) < tableOrder(labels[j]) })

	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("%s=[%s]", label, strings.Join(ev.Assignments[label], ",")))
	}
	return fmt.Sprintf("[%s] Allocation completed | allocation_id=%s | layout=%dx%d | seed=%d | seated=%d | free=%d | %s\n",
		ev.CompletedAt, ev.AllocationID, ev.Tables, ev.SeatsPerTable, ev.Seed, ev.Seated, ev.FreeSeats, strings.Join(parts, " "))
}

// tableOrder extracts n from "Table n" so labels sort numerically.
func tableOrder(label string) int {
	var n int
	if _, err := fmt.Sscanf(label, "Table %d", &n); err != nil {
		return 1 << 30
	}
	return n
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
