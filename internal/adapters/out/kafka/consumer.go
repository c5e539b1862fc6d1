package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const defaultRetryBackoff = time.Second

// Consumer feeds one topic to a handler as part of a consumer group. An
// offset is committed only after the handler succeeded; a failing message is
// retried until it succeeds or the consumer is stopped.
type Consumer struct {
	reader  *kafka.Reader
	handler ports.EventHandler
	backoff time.Duration
	logger  *slog.Logger
}

func NewConsumer(brokers []string, topic, groupID string, handler ports.EventHandler, logger *slog.Logger) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 10e3,
			MaxBytes: 10e6,
			MaxWait:  time.Second,
		}),
		handler: handler,
		backoff: defaultRetryBackoff,
		logger:  logger.With("component", "kafka.Consumer", "topic", topic),
	}, nil
}

// Run blocks until ctx is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.InfoContext(ctx, "consumer started")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
				c.logger.InfoContext(ctx, "consumer stopped")
				return nil
			}
			return err
		}

		if err = c.handle(ctx, msg); err != nil {
			return nil
		}
		if err = c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.ErrorContext(ctx, "failed to commit offset",
				"partition", msg.Partition, "offset", msg.Offset, "error", err)
		}
	}
}

// handle returns an error only when ctx ended before the handler succeeded.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) error {
	for attempt := 1; ; attempt++ {
		err := c.handler(ctx, msg.Value)
		if err == nil {
			return nil
		}
		c.logger.ErrorContext(ctx, "event handler failed",
			"key", string(msg.Key), "offset", msg.Offset, "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoff):
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
