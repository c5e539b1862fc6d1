package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
	ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
		"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
	)
)

// GetUserOrdersQuery lists the orders a buyer placed, newest first.
type GetUserOrdersQuery struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetUserOrdersQuery(userID kernel.UUID) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	return GetUserOrdersQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// GetOrderDetailsQuery reads one order with its items as seen by actor.
// Buyers see their own orders; the platform sees every order.
//
// Example:
//
//	query, err := NewGetOrderDetailsQuery(actor, orderID)
//	if err != nil {
//	    return err
//	}
//	details, err := handler.Handle(ctx, query)
//	for _, item := range details.Items {
//	    if item.Reviewable {
//	        // offer the review form
//	    }
//	}
type GetOrderDetailsQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderDetailsQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return GetOrderDetailsQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}
