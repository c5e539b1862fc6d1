package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.total_price,
			COUNT(oi.id),
			'',
			o.created_at,
			o.updated_at
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.user_id = ?
		GROUP BY o.id
		ORDER BY o.created_at DESC, o.id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// GetOrderDetailsQueryHandler answers NotFound both for missing orders and for
// orders of other buyers.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	details, found, err := loadOrderDetails(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderDetails{}, err
	}
	actor := query.Actor()
	if !found || (!actor.Is(kernel.RolePlatform) && !details.UserID.IsEqual(actor.ID())) {
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	items, err := loadItems(ctx, h.db, []uuid.UUID{details.ID.Bytes()}, itemFilter{})
	if err != nil {
		return OrderDetails{}, err
	}
	details.Items = items[details.ID.Bytes()]
	return details, nil
}
