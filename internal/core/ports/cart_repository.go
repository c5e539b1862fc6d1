package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// CartRepository stores carts and their items.
type CartRepository interface {
	// Add inserts an empty cart. When the user already has a cart the insert
	// is a no-op, so concurrent lazy creation never fails.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Save replaces the stored item set of the cart and its derived total.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// GetByUser returns the user's cart or an ObjectNotFoundError.
	GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// GetByUserForUpdate is GetByUser plus a row lock on the cart, serializing
	// concurrent mutations of the same cart.
	GetByUserForUpdate(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)
}
