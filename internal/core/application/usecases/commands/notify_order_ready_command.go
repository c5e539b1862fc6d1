package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrNotifyOrderReadyCommandIsNotConstructed = errors.New(
	"NotifyOrderReadyCommand must be created via NewNotifyOrderReadyCommand constructor",
)

// NotifyOrderReadyCommand is a producer announcing that an order can be picked up.
type NotifyOrderReadyCommand struct { //nolint:recvcheck //using for validation
	producer kernel.Actor
	orderID  kernel.UUID
	message  string

	guard guard.ConstructorGuard
}

func NewNotifyOrderReadyCommand(producer kernel.Actor, orderID kernel.UUID, message string) (NotifyOrderReadyCommand, error) {
	if err := producer.Validate(); err != nil {
		return NotifyOrderReadyCommand{}, errs.NewValueIsRequiredErrorWithCause("producer", err)
	}
	if err := orderID.Validate(); err != nil {
		return NotifyOrderReadyCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return NotifyOrderReadyCommand{
		producer: producer,
		orderID:  orderID,
		message:  message,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c NotifyOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrNotifyOrderReadyCommandIsNotConstructed)
}

func (c NotifyOrderReadyCommand) Producer() kernel.Actor {
	return c.producer
}

func (c NotifyOrderReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c NotifyOrderReadyCommand) Message() string {
	return c.message
}
