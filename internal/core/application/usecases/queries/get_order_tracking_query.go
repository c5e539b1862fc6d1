package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

type GetOrderTrackingQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderTrackingQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderTrackingQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return GetOrderTrackingQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

func (q GetOrderTrackingQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderTracking is the buyer-facing progress of an order. Location is nil
// until the delivery agent reports a position.
type OrderTracking struct {
	OrderID       kernel.UUID
	CurrentStatus order.Status
	EstimatedTime string
	Timeline      []TrackingEvent
	Location      *TrackedLocation
}

// TrackingEvent is one status the order went through, oldest first.
type TrackingEvent struct {
	Status        order.Status
	Notes         string
	EstimatedTime string
	At            time.Time
}

type TrackedLocation struct {
	Latitude   float64
	Longitude  float64
	RecordedAt time.Time
}

// EstimatedTime is the customer-facing expectation for an order in status.
func EstimatedTime(status order.Status) string {
	switch status {
	case order.Pending:
		return "2-3 hours for confirmation"
	case order.Processing:
		return "24-48 hours for preparation"
	case order.Shipped:
		return "1-3 days for delivery"
	case order.Delivered:
		return "Delivered"
	default:
		return "Soon"
	}
}
