package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

// RelayOutboxCommand publishes up to batchSize pending outbox messages.
type RelayOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int
	guard     guard.ConstructorGuard
}

func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	if batchSize < 1 || batchSize > 1000 {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, 1000)
	}
	return RelayOutboxCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}

// RelayOutboxCommandHandler moves events from the outbox table to the event
// publisher. Pending rows are locked with SKIP LOCKED so several relays can
// run side by side. A message is marked sent only after the publisher
// accepted it, which makes delivery at-least-once; the first failure stops
// the batch so that ordering per key is kept.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "RelayOutboxCommandHandler"),
	}
}

// Handle returns the number of messages published.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	pending, err := repo.FetchPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, msg := range pending {
		if err = h.publisher.Publish(ctx, msg.Topic, msg.Key, msg.Payload); err != nil {
			h.logger.ErrorContext(ctx, "failed to publish outbox message",
				"event_id", msg.EventID.String(), "topic", msg.Topic, "error", err)
			break
		}
		if err = repo.MarkSent(ctx, msg.ID, time.Now().UTC()); err != nil {
			return 0, err
		}
		sent++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return sent, nil
}
