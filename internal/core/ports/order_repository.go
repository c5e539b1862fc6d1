package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// their items and their status history.
type OrderRepository interface {
	// Add persists a new order together with all of its items.
	// Callers run it inside a transaction so that either everything or nothing is stored.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists the status-related fields of an order and inserts
	// its new history entries. The write only succeeds while the stored status
	// still equals previous; otherwise a VersionIsInvalidError is returned.
	UpdateStatus(ctx context.Context, aggregate *order.Order, previous order.Status) error

	// MarkPaid persists the payment settlement of an order. It succeeds at most
	// once per order; later calls return order.ErrOrderAlreadyPaid.
	MarkPaid(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the transaction ends.
	// Concurrent status changes of the same order are serialized through it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItem retrieves the order that owns the given order item.
	GetByItem(ctx context.Context, itemID kernel.UUID) (*order.Order, error)
}
