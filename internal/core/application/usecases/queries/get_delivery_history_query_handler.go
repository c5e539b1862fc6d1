package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deliveredOrders selects the delivered orders of one agent together with the
// moment they were delivered. The history entry is authoritative; updated_at
// covers orders delivered before history was recorded.
const deliveredOrders = `
	SELECT
		o.id,
		o.tracking_code,
		COALESCE(u.name, '') AS customer_name,
		COALESCE(u.phone, '') AS customer_phone,
		o.shipping_address,
		o.total_price,
		COALESCE(c.delivery_fee, 0) AS delivery_fee,
		a.accepted_at,
		COALESCE(h.delivered_at, o.updated_at) AS delivered_at,
		o.created_at
	FROM orders o
	JOIN delivery_assignments a ON a.order_id = o.id
	LEFT JOIN users u ON u.id = o.user_id
	LEFT JOIN checkouts c ON c.order_id = o.id
	LEFT JOIN LATERAL (
		SELECT MAX(created_at) AS delivered_at
		FROM order_status_history
		WHERE order_id = o.id AND status = ?
	) h ON TRUE
	WHERE o.status = ? AND a.agent_id = ?`

type GetDeliveryHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryHistoryQueryHandler(db *gorm.DB) GetDeliveryHistoryQueryHandler {
	return GetDeliveryHistoryQueryHandler{db: db}
}

func (h GetDeliveryHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryHistoryQuery,
) (DeliveryHistoryPage, error) {
	if err := query.Validate(); err != nil {
		return DeliveryHistoryPage{}, err
	}

	delivered := order.Delivered.String()
	agentID := query.AgentID().Bytes()

	var total int64
	if err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders o
		JOIN delivery_assignments a ON a.order_id = o.id
		WHERE o.status = ? AND a.agent_id = ?
	`, delivered, agentID).Row().Scan(&total); err != nil {
		return DeliveryHistoryPage{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		deliveredOrders+` ORDER BY delivered_at DESC, o.id LIMIT ? OFFSET ?`,
		delivered, delivered, agentID, query.Limit(), (query.Page()-1)*query.Limit(),
	).Rows()
	if err != nil {
		return DeliveryHistoryPage{}, err
	}
	defer rows.Close()

	entries := make([]DeliveryHistoryEntry, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			entry DeliveryHistoryEntry
			id    uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&entry.TrackingCode,
			&entry.CustomerName,
			&entry.CustomerPhone,
			&entry.ShippingAddress,
			&entry.TotalPrice,
			&entry.DeliveryFee,
			&entry.AcceptedAt,
			&entry.DeliveredAt,
			&entry.CreatedAt,
		); err != nil {
			return DeliveryHistoryPage{}, err
		}
		if entry.OrderID, err = kernel.UUIDFromBytes(id); err != nil {
			return DeliveryHistoryPage{}, err
		}
		entries = append(entries, entry)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return DeliveryHistoryPage{}, err
	}

	items, err := loadItems(ctx, h.db, ids, itemFilter{})
	if err != nil {
		return DeliveryHistoryPage{}, err
	}
	for i := range entries {
		entries[i].Items = items[entries[i].OrderID.Bytes()]
	}

	return DeliveryHistoryPage{
		Deliveries: entries,
		Pagination: newPagination(query.Page(), query.Limit(), total),
	}, nil
}
