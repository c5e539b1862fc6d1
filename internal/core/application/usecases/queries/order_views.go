// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for one caller: the buyer, the producer
// or the delivery agent. They never load aggregates.
package queries

import (
	"context"
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderSummary is one row of an order listing. For producers TotalPrice and
// ItemCount cover their own items only.
type OrderSummary struct {
	ID           kernel.UUID
	Status       order.Status
	TotalPrice   decimal.Decimal
	ItemCount    int
	CustomerName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderItemView struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	ProducerID  kernel.UUID
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	Notes       string

	// Reviewable is set when the order is delivered and the buyer has not
	// reviewed this item yet.
	Reviewable bool
}

type OrderDetails struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	Status          order.Status
	TotalPrice      decimal.Decimal
	ShippingAddress string
	PaymentMethod   string
	TrackingCode    string
	ReadyForPickup  bool
	ReadyNotifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItemView
}

// itemFilter narrows loadItems to the items of one producer.
type itemFilter struct {
	producerID *uuid.UUID
}

// loadItems fetches the items of several orders in one round trip, grouped by
// order id and kept in their original position.
func loadItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID, filter itemFilter) (map[uuid.UUID][]OrderItemView, error) {
	grouped := make(map[uuid.UUID][]OrderItemView, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, id.String())
	}

	stmt := `
		SELECT
			oi.id,
			oi.order_id,
			oi.product_id,
			COALESCE(p.name, ''),
			oi.producer_id,
			oi.quantity,
			oi.unit_price,
			oi.total_price,
			oi.notes,
			o.status = ? AND NOT EXISTS (
				SELECT 1 FROM reviews r
				WHERE r.order_item_id = oi.id AND r.user_id = o.user_id
			)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY(?::uuid[])`
	args := []any{order.Delivered.String(), pq.Array(ids)}
	if filter.producerID != nil {
		stmt += ` AND oi.producer_id = ?`
		args = append(args, *filter.producerID)
	}
	stmt += ` ORDER BY oi.order_id, oi.position`

	rows, err := db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                         OrderItemView
			id, orderID, product, seller uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&orderID,
			&product,
			&item.ProductName,
			&seller,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
			&item.Notes,
			&item.Reviewable,
		); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id); err != nil {
			return nil, err
		}
		if item.OrderID, err = kernel.UUIDFromBytes(orderID); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(product); err != nil {
			return nil, err
		}
		if item.ProducerID, err = kernel.UUIDFromBytes(seller); err != nil {
			return nil, err
		}
		grouped[orderID] = append(grouped[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return grouped, nil
}

// scanSummaries reads rows of (id, status, total, item count, customer name,
// created, updated).
func scanSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			summary OrderSummary
			id      uuid.UUID
			status  string
		)
		if err := rows.Scan(
			&id,
			&status,
			&summary.TotalPrice,
			&summary.ItemCount,
			&summary.CustomerName,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		); err != nil {
			return nil, err
		}

		var err error
		if summary.ID, err = kernel.UUIDFromBytes(id); err != nil {
			return nil, err
		}
		if summary.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// loadOrderDetails reads the order header; items are attached by the caller.
// It returns found=false when the order does not exist.
func loadOrderDetails(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (OrderDetails, bool, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			total_price,
			shipping_address,
			payment_method,
			tracking_code,
			ready_for_pickup,
			ready_notified_at,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return OrderDetails{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return OrderDetails{}, false, rows.Err()
	}

	var (
		details OrderDetails
		userID  uuid.UUID
		status  string
	)
	if err = rows.Scan(
		new(uuid.UUID),
		&userID,
		&status,
		&details.TotalPrice,
		&details.ShippingAddress,
		&details.PaymentMethod,
		&details.TrackingCode,
		&details.ReadyForPickup,
		&details.ReadyNotifiedAt,
		&details.CreatedAt,
		&details.UpdatedAt,
	); err != nil {
		return OrderDetails{}, false, err
	}

	details.ID = orderID
	if details.UserID, err = kernel.UUIDFromBytes(userID); err != nil {
		return OrderDetails{}, false, err
	}
	if details.Status, err = order.ParseStatus(status); err != nil {
		return OrderDetails{}, false, err
	}
	return details, true, nil
}
