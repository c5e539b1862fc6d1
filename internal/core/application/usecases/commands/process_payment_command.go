package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	orderID kernel.UUID
	method  string

	guard guard.ConstructorGuard
}

func NewProcessPaymentCommand(userID, orderID kernel.UUID, method string) (ProcessPaymentCommand, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate()); err != nil {
		return ProcessPaymentCommand{}, errs.NewValueIsRequiredErrorWithCause("payment", err)
	}
	method = strings.ToLower(strings.TrimSpace(method))
	if method == "" {
		return ProcessPaymentCommand{}, errs.NewValueIsRequiredError("method")
	}
	return ProcessPaymentCommand{userID: userID, orderID: orderID, method: method, guard: guard.NewConstructorGuard()}, nil
}

func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

func (c ProcessPaymentCommand) UserID() kernel.UUID {
	return c.userID
}

func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ProcessPaymentCommand) Method() string {
	return c.method
}
