package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const deliveryOrderColumns = `
	o.id,
	o.user_id,
	COALESCE(u.name, ''),
	COALESCE(u.phone, ''),
	o.status,
	o.total_price,
	COALESCE(c.delivery_fee, 0),
	o.shipping_address,
	o.payment_method,
	o.tracking_code,
	a.accepted_at,
	o.created_at,
	o.updated_at`

type GetAvailableDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableDeliveriesQueryHandler(db *gorm.DB) GetAvailableDeliveriesQueryHandler {
	return GetAvailableDeliveriesQueryHandler{db: db}
}

func (h GetAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDeliveriesQuery,
) ([]DeliveryOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+deliveryOrderColumns+`
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		LEFT JOIN checkouts c ON c.order_id = o.id
		LEFT JOIN delivery_assignments a ON a.order_id = o.id
		WHERE o.status = ? AND a.order_id IS NULL
		ORDER BY o.created_at DESC, o.id
	`, order.Processing.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveryOrders(ctx, h.db, rows)
}

type GetAcceptedDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetAcceptedDeliveriesQueryHandler(db *gorm.DB) GetAcceptedDeliveriesQueryHandler {
	return GetAcceptedDeliveriesQueryHandler{db: db}
}

func (h GetAcceptedDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAcceptedDeliveriesQuery,
) ([]DeliveryOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+deliveryOrderColumns+`
		FROM orders o
		JOIN delivery_assignments a ON a.order_id = o.id
		LEFT JOIN users u ON u.id = o.user_id
		LEFT JOIN checkouts c ON c.order_id = o.id
		WHERE o.status = ? AND a.agent_id = ?
		ORDER BY a.accepted_at DESC, o.id
	`, order.Shipped.String(), query.AgentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveryOrders(ctx, h.db, rows)
}

// scanDeliveryOrders reads deliveryOrderColumns rows and attaches their items.
func scanDeliveryOrders(ctx context.Context, db *gorm.DB, rows *sql.Rows) ([]DeliveryOrderView, error) {
	views := make([]DeliveryOrderView, 0)
	ids := make([]uuid.UUID, 0)

	for rows.Next() {
		var (
			view       DeliveryOrderView
			id, userID uuid.UUID
			status     string
		)
		if err := rows.Scan(
			&id,
			&userID,
			&view.CustomerName,
			&view.CustomerPhone,
			&status,
			&view.TotalPrice,
			&view.DeliveryFee,
			&view.ShippingAddress,
			&view.PaymentMethod,
			&view.TrackingCode,
			&view.AcceptedAt,
			&view.CreatedAt,
			&view.UpdatedAt,
		); err != nil {
			return nil, err
		}

		var err error
		if view.ID, err = kernel.UUIDFromBytes(id); err != nil {
			return nil, err
		}
		if view.UserID, err = kernel.UUIDFromBytes(userID); err != nil {
			return nil, err
		}
		if view.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		views = append(views, view)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := loadItems(ctx, db, ids, itemFilter{})
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].Items = items[views[i].ID.Bytes()]
	}
	return views, nil
}
