package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderStatusHistoryQueryIsNotConstructed = errors.New(
	"GetOrderStatusHistoryQuery must be created via NewGetOrderStatusHistoryQuery constructor",
)

type GetOrderStatusHistoryQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderStatusHistoryQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderStatusHistoryQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderStatusHistoryQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusHistoryQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return GetOrderStatusHistoryQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusHistoryQueryIsNotConstructed)
}

func (q GetOrderStatusHistoryQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetOrderStatusHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// StatusHistoryEntry is one audited change. A ready-for-pickup notice has the
// same Status and PreviousStatus.
type StatusHistoryEntry struct {
	ID             kernel.UUID
	Status         order.Status
	PreviousStatus order.Status
	Notes          string
	ActorID        kernel.UUID
	CreatedAt      time.Time
}
