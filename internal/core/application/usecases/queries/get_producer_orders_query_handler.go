package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProducerOrdersQueryHandler sums only the producer's own items: other
// producers' lines of a shared order stay invisible.
type GetProducerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetProducerOrdersQueryHandler(db *gorm.DB) GetProducerOrdersQueryHandler {
	return GetProducerOrdersQueryHandler{db: db}
}

func (h GetProducerOrdersQueryHandler) Handle(ctx context.Context, query GetProducerOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			SUM(oi.total_price),
			COUNT(oi.id),
			COALESCE(u.name, ''),
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id AND oi.producer_id = ?
		LEFT JOIN users u ON u.id = o.user_id
		GROUP BY o.id, u.name
		ORDER BY o.created_at DESC, o.id
	`, query.ProducerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

type GetProducerOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetProducerOrderDetailsQueryHandler(db *gorm.DB) GetProducerOrderDetailsQueryHandler {
	return GetProducerOrderDetailsQueryHandler{db: db}
}

// Handle returns NotFound when the order has no item of the producer.
func (h GetProducerOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetProducerOrderDetailsQuery,
) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	details, found, err := loadOrderDetails(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderDetails{}, err
	}
	if !found {
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	producerID := query.ProducerID().Bytes()
	items, err := loadItems(ctx, h.db, []uuid.UUID{details.ID.Bytes()}, itemFilter{producerID: &producerID})
	if err != nil {
		return OrderDetails{}, err
	}
	own := items[details.ID.Bytes()]
	if len(own) == 0 {
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	total := decimal.Zero
	for i := range own {
		total = total.Add(own[i].TotalPrice)
		own[i].Reviewable = false
	}
	details.Items = own
	details.TotalPrice = total
	return details, nil
}
