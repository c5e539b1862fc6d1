package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// OutboxMessage is an event recorded in the same transaction as the state
// change that caused it, and relayed to the EventPublisher afterwards.
type OutboxMessage struct {
	ID        kernel.UUID
	EventID   kernel.UUID
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
	SentAt    *time.Time
}

type OutboxRepository interface {
	Add(ctx context.Context, msg OutboxMessage) error

	// FetchPending returns up to limit unsent messages, oldest first, locking
	// them so that concurrent relays skip rather than duplicate them.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkSent(ctx context.Context, id kernel.UUID, at time.Time) error
}
