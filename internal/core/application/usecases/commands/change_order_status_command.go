package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks to move an order to a new status on behalf of actor.
// expected, when not Unknown, is the status the caller believes the order is
// in; a mismatch fails with a stale precondition instead of applying the move.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(producer, orderID, order.Shipped, "left the farm", order.Processing)
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Actor
	orderID  kernel.UUID
	status   order.Status
	notes    string
	expected order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	status order.Status,
	notes string,
	expected order.Status,
) (ChangeOrderStatusCommand, error) {
	if err := actor.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := status.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	if expected != order.Unknown {
		if err := expected.Validate(); err != nil {
			return ChangeOrderStatusCommand{}, err
		}
	}
	return ChangeOrderStatusCommand{
		actor:    actor,
		orderID:  orderID,
		status:   status,
		notes:    notes,
		expected: expected,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c ChangeOrderStatusCommand) Notes() string {
	return c.notes
}

func (c ChangeOrderStatusCommand) Expected() order.Status {
	return c.expected
}
