package ports

import (
	"context"

	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
)

type CheckoutRepository interface {
	Add(ctx context.Context, aggregate *checkout.Checkout) error
	Update(ctx context.Context, aggregate *checkout.Checkout) error

	// GetByOrder returns the checkout bound to orderID, or an ObjectNotFoundError.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*checkout.Checkout, error)
}

// AssignmentRepository stores which delivery agent carries which order.
type AssignmentRepository interface {
	// Add fails with a ConflictError when the order is already assigned.
	Add(ctx context.Context, assignment *delivery.Assignment) error
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Assignment, error)
}

// TrackingRepository appends the positions reported by delivery agents.
type TrackingRepository interface {
	Add(ctx context.Context, point *delivery.TrackingPoint) error
}
