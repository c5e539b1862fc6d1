package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRecordTrackingCommandIsNotConstructed = errors.New(
	"RecordTrackingCommand must be created via NewRecordTrackingCommand constructor",
)

// RecordTrackingCommand reports the current position of the agent carrying an order.
type RecordTrackingCommand struct { //nolint:recvcheck //using for validation
	agent    kernel.Actor
	orderID  kernel.UUID
	location kernel.Location

	guard guard.ConstructorGuard
}

func NewRecordTrackingCommand(agent kernel.Actor, orderID kernel.UUID, latitude, longitude float64) (RecordTrackingCommand, error) {
	if err := agent.Validate(); err != nil {
		return RecordTrackingCommand{}, errs.NewValueIsRequiredErrorWithCause("agent", err)
	}
	if !agent.Is(kernel.RoleDeliveryAgent) {
		return RecordTrackingCommand{}, errs.NewForbiddenError("record tracking")
	}
	if err := orderID.Validate(); err != nil {
		return RecordTrackingCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	location, err := kernel.NewLocation(kernel.Degrees(latitude), kernel.Degrees(longitude))
	if err != nil {
		return RecordTrackingCommand{}, err
	}
	return RecordTrackingCommand{
		agent:    agent,
		orderID:  orderID,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RecordTrackingCommand) Validate() error {
	return c.guard.Validate(ErrRecordTrackingCommandIsNotConstructed)
}

func (c RecordTrackingCommand) Agent() kernel.Actor {
	return c.agent
}

func (c RecordTrackingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RecordTrackingCommand) Location() kernel.Location {
	return c.location
}
