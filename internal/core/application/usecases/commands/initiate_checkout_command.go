package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrInitiateCheckoutCommandIsNotConstructed = errors.New(
	"InitiateCheckoutCommand must be created via NewInitiateCheckoutCommand constructor",
)

// InitiateCheckoutCommand turns the user's cart into a pending order and a checkout session.
type InitiateCheckoutCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

func NewInitiateCheckoutCommand(userID, cartID kernel.UUID) (InitiateCheckoutCommand, error) {
	if err := userID.Validate(); err != nil {
		return InitiateCheckoutCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if err := cartID.Validate(); err != nil {
		return InitiateCheckoutCommand{}, errs.NewValueIsRequiredErrorWithCause("cartId", err)
	}
	return InitiateCheckoutCommand{userID: userID, cartID: cartID, guard: guard.NewConstructorGuard()}, nil
}

func (c InitiateCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrInitiateCheckoutCommandIsNotConstructed)
}

func (c InitiateCheckoutCommand) UserID() kernel.UUID {
	return c.userID
}

func (c InitiateCheckoutCommand) CartID() kernel.UUID {
	return c.cartID
}
