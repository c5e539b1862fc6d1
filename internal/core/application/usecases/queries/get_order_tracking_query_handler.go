package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler builds the tracking view from the order's
// status history and the latest position reported by its delivery agent.
// The buyer, producers with items in the order, the assigned agent and the
// platform may read it.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

func (h GetOrderTrackingQueryHandler) Handle(ctx context.Context, query GetOrderTrackingQuery) (OrderTracking, error) {
	if err := query.Validate(); err != nil {
		return OrderTracking{}, err
	}

	actor := query.Actor()
	access, err := loadOrderAccess(ctx, h.db, actor, query.OrderID())
	if err != nil {
		return OrderTracking{}, err
	}
	allowed := actor.Is(kernel.RolePlatform) ||
		actor.Is(kernel.RoleProducer) && access.HasItems ||
		actor.Is(kernel.RoleDeliveryAgent) && access.IsCarrier ||
		actor.ID().Bytes() == access.UserID
	if !allowed {
		return OrderTracking{}, errs.NewForbiddenErrorWithCause("read order tracking",
			fmt.Errorf("%s %s has no access to order %s", actor.Role(), actor.ID(), query.OrderID()))
	}

	current, err := order.ParseStatus(access.Status)
	if err != nil {
		return OrderTracking{}, err
	}

	timeline, err := h.timeline(ctx, query.OrderID())
	if err != nil {
		return OrderTracking{}, err
	}
	placed := TrackingEvent{Status: order.Pending, EstimatedTime: EstimatedTime(order.Pending), At: access.CreatedAt}
	timeline = append([]TrackingEvent{placed}, timeline...)

	location, err := h.latestLocation(ctx, query.OrderID())
	if err != nil {
		return OrderTracking{}, err
	}

	return OrderTracking{
		OrderID:       query.OrderID(),
		CurrentStatus: current,
		EstimatedTime: EstimatedTime(current),
		Timeline:      timeline,
		Location:      location,
	}, nil
}

// timeline lists status changes; ready-for-pickup notices keep the status
// and are left out.
func (h GetOrderTrackingQueryHandler) timeline(ctx context.Context, orderID kernel.UUID) ([]TrackingEvent, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, notes, created_at
		FROM order_status_history
		WHERE order_id = ? AND status <> previous_status
		ORDER BY created_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TrackingEvent, 0)
	for rows.Next() {
		var (
			event  TrackingEvent
			status string
		)
		if err = rows.Scan(&status, &event.Notes, &event.At); err != nil {
			return nil, err
		}
		if event.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		event.EstimatedTime = EstimatedTime(event.Status)
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (h GetOrderTrackingQueryHandler) latestLocation(ctx context.Context, orderID kernel.UUID) (*TrackedLocation, error) {
	var location TrackedLocation
	err := h.db.WithContext(ctx).Raw(`
		SELECT latitude, longitude, recorded_at
		FROM order_tracking
		WHERE order_id = ?
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1
	`, orderID.Bytes()).Row().Scan(&location.Latitude, &location.Longitude, &location.RecordedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return &location, nil
}
