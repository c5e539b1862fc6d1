package ports

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
)

// CatalogRepository is the read side of the product catalog plus the stock
// debit applied when an order is paid.
type CatalogRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)

	// DecreaseStockForOrder debits every product of the order by the ordered
	// quantity, never going below zero.
	DecreaseStockForOrder(ctx context.Context, orderID kernel.UUID) error
}

// UserRepository answers whether a user account exists. Accounts are managed
// by the identity service.
type UserRepository interface {
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
