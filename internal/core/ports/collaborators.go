package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the outcome reported by a payment authorizer.
type PaymentStatus string

const (
	PaymentApproved PaymentStatus = "approved"
	PaymentDeclined PaymentStatus = "declined"
	PaymentPending  PaymentStatus = "pending"
)

type PaymentResult struct {
	Status        PaymentStatus
	TransactionID string
}

// PaymentAuthorizer is the boundary to the payment gateway.
type PaymentAuthorizer interface {
	ProcessPayment(ctx context.Context, orderID kernel.UUID, amount decimal.Decimal, method string) (PaymentResult, error)
}

// PushMessage is a device notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushTransport delivers push messages fire-and-forget. It returns the tokens
// the provider rejected as invalid so that they can be deactivated.
type PushTransport interface {
	Send(ctx context.Context, tokens []string, msg PushMessage) (invalidTokens []string, err error)
}

// EventPublisher delivers an event to a topic, at least once.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

// EventHandler consumes one event payload. Returning an error leaves the
// event eligible for redelivery.
type EventHandler func(ctx context.Context, payload []byte) error

// IdempotencyStore remembers the response of a request carrying an
// Idempotency-Key so that retries replay it instead of repeating the write.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
	Remember(ctx context.Context, key, value string, ttl time.Duration) error
}
