package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand lets a delivery agent take a processing order.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	agent   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptDeliveryCommand(agent kernel.Actor, orderID kernel.UUID) (AcceptDeliveryCommand, error) {
	if err := agent.Validate(); err != nil {
		return AcceptDeliveryCommand{}, errs.NewValueIsRequiredErrorWithCause("agent", err)
	}
	if !agent.Is(kernel.RoleDeliveryAgent) {
		return AcceptDeliveryCommand{}, errs.NewForbiddenError("accept delivery")
	}
	if err := orderID.Validate(); err != nil {
		return AcceptDeliveryCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return AcceptDeliveryCommand{agent: agent, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

func (c AcceptDeliveryCommand) Agent() kernel.Actor {
	return c.agent
}

func (c AcceptDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}
