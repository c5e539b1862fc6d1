package commands

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errs.NewValueIsRequiredError("items")
)

// OrderLine is one requested product of a new order.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
	Notes     string
}

// CreateOrderCommand represents a request to place a new order.
// Prices and producers are not part of the request: they are snapshotted
// from the catalog when the order is created.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, []OrderLine{
//	    {ProductID: tomatoes, Quantity: 3},
//	    {ProductID: honey, Quantity: 1, Notes: "gift"},
//	}, "Rua das Flores, 10", "pix")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID          kernel.UUID
	lines           []OrderLine
	shippingAddress string
	paymentMethod   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the user id and every line (known product
// id, quantity >= 1).
func NewCreateOrderCommand(
	userID kernel.UUID,
	lines []OrderLine,
	shippingAddress, paymentMethod string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		shippingAddress: strings.TrimSpace(shippingAddress),
		paymentMethod:   strings.TrimSpace(paymentMethod),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Lines returns a copy of the requested lines, in request order.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}
	for idx, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].productId", idx), err)
		}
		if line.Quantity < 1 {
			return errs.NewValueIsOutOfRangeError(fmt.Sprintf("items[%d].quantity", idx), line.Quantity, 1, "unbounded")
		}
	}
	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
