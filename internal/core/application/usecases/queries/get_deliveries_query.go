package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAvailableDeliveriesQueryIsNotConstructed = errors.New(
		"GetAvailableDeliveriesQuery must be created via NewGetAvailableDeliveriesQuery constructor",
	)
	ErrGetAcceptedDeliveriesQueryIsNotConstructed = errors.New(
		"GetAcceptedDeliveriesQuery must be created via NewGetAcceptedDeliveriesQuery constructor",
	)
)

// GetAvailableDeliveriesQuery lists processing orders nobody accepted yet.
type GetAvailableDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAvailableDeliveriesQuery() GetAvailableDeliveriesQuery {
	return GetAvailableDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveriesQueryIsNotConstructed)
}

// GetAcceptedDeliveriesQuery lists shipped orders the agent is carrying.
type GetAcceptedDeliveriesQuery struct {
	agentID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetAcceptedDeliveriesQuery(agentID kernel.UUID) (GetAcceptedDeliveriesQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAcceptedDeliveriesQuery{}, errs.NewValueIsRequiredErrorWithCause("agentId", err)
	}
	return GetAcceptedDeliveriesQuery{agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAcceptedDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAcceptedDeliveriesQueryIsNotConstructed)
}

func (q GetAcceptedDeliveriesQuery) AgentID() kernel.UUID {
	return q.agentID
}

// DeliveryOrderView is an order as a delivery agent sees it: where it goes,
// who receives it and what is in the bag.
type DeliveryOrderView struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	CustomerName    string
	CustomerPhone   string
	Status          order.Status
	TotalPrice      decimal.Decimal
	DeliveryFee     decimal.Decimal
	ShippingAddress string
	PaymentMethod   string
	TrackingCode    string
	AcceptedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItemView
}
