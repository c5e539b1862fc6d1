package queries

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStatusHistoryQueryHandler lists the history oldest first. The buyer,
// any producer with items in the order and the platform may read it.
type GetOrderStatusHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusHistoryQueryHandler(db *gorm.DB) GetOrderStatusHistoryQueryHandler {
	return GetOrderStatusHistoryQueryHandler{db: db}
}

func (h GetOrderStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusHistoryQuery,
) ([]StatusHistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorize(ctx, query.Actor(), query.OrderID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			previous_status,
			notes,
			actor_id,
			created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]StatusHistoryEntry, 0)
	for rows.Next() {
		var (
			entry            StatusHistoryEntry
			id, actorID      uuid.UUID
			status, previous string
		)
		if err = rows.Scan(&id, &status, &previous, &entry.Notes, &actorID, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if entry.ID, err = kernel.UUIDFromBytes(id); err != nil {
			return nil, err
		}
		if entry.ActorID, err = kernel.UUIDFromBytes(actorID); err != nil {
			return nil, err
		}
		if entry.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if entry.PreviousStatus, err = order.ParseStatus(previous); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h GetOrderStatusHistoryQueryHandler) authorize(ctx context.Context, actor kernel.Actor, orderID kernel.UUID) error {
	access, err := loadOrderAccess(ctx, h.db, actor, orderID)
	if err != nil {
		return err
	}

	switch {
	case actor.Is(kernel.RolePlatform):
		return nil
	case actor.Is(kernel.RoleProducer) && access.HasItems:
		return nil
	case actor.ID().Bytes() == access.UserID:
		return nil
	default:
		return errs.NewForbiddenErrorWithCause("read order status history",
			fmt.Errorf("%s %s has no access to order %s", actor.Role(), actor.ID(), orderID))
	}
}

// orderAccess is what the per-order views need to decide who may read them.
type orderAccess struct {
	UserID    uuid.UUID
	Status    string
	CreatedAt time.Time
	HasItems  bool
	IsCarrier bool
}

// loadOrderAccess answers NotFound for a missing order.
func loadOrderAccess(ctx context.Context, db *gorm.DB, actor kernel.Actor, orderID kernel.UUID) (orderAccess, error) {
	var access orderAccess
	result := db.WithContext(ctx).Raw(`
		SELECT
			o.user_id,
			o.status,
			o.created_at,
			EXISTS (
				SELECT 1 FROM order_items oi
				WHERE oi.order_id = o.id AND oi.producer_id = ?
			) AS has_items,
			EXISTS (
				SELECT 1 FROM delivery_assignments da
				WHERE da.order_id = o.id AND da.agent_id = ?
			) AS is_carrier
		FROM orders o
		WHERE o.id = ?
	`, actor.ID().Bytes(), actor.ID().Bytes(), orderID.Bytes()).Scan(&access)
	if result.Error != nil {
		return orderAccess{}, result.Error
	}
	if result.RowsAffected == 0 {
		return orderAccess{}, errs.NewObjectNotFoundError("order", orderID.String())
	}
	return access, nil
}
