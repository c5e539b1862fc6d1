package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetProducerOrdersQueryIsNotConstructed = errors.New(
		"GetProducerOrdersQuery must be created via NewGetProducerOrdersQuery constructor",
	)
	ErrGetProducerOrderDetailsQueryIsNotConstructed = errors.New(
		"GetProducerOrderDetailsQuery must be created via NewGetProducerOrderDetailsQuery constructor",
	)
)

// GetProducerOrdersQuery lists the orders containing at least one item of producerID.
type GetProducerOrdersQuery struct {
	producerID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetProducerOrdersQuery(producerID kernel.UUID) (GetProducerOrdersQuery, error) {
	if err := producerID.Validate(); err != nil {
		return GetProducerOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("producerId", err)
	}
	return GetProducerOrdersQuery{producerID: producerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProducerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetProducerOrdersQueryIsNotConstructed)
}

func (q GetProducerOrdersQuery) ProducerID() kernel.UUID {
	return q.producerID
}

// GetProducerOrderDetailsQuery reads one order restricted to producerID's items.
type GetProducerOrderDetailsQuery struct {
	producerID kernel.UUID
	orderID    kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetProducerOrderDetailsQuery(producerID, orderID kernel.UUID) (GetProducerOrderDetailsQuery, error) {
	if err := producerID.Validate(); err != nil {
		return GetProducerOrderDetailsQuery{}, errs.NewValueIsRequiredErrorWithCause("producerId", err)
	}
	if err := orderID.Validate(); err != nil {
		return GetProducerOrderDetailsQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return GetProducerOrderDetailsQuery{
		producerID: producerID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetProducerOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetProducerOrderDetailsQueryIsNotConstructed)
}

func (q GetProducerOrderDetailsQuery) ProducerID() kernel.UUID {
	return q.producerID
}

func (q GetProducerOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}
