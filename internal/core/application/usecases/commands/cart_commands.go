package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrCreateCartCommandIsNotConstructed = errors.New(
		"GetOrCreateCartCommand must be created via NewGetOrCreateCartCommand constructor",
	)
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrSetCartItemQuantityCommandIsNotConstructed = errors.New(
		"SetCartItemQuantityCommand must be created via NewSetCartItemQuantityCommand constructor",
	)
	ErrRemoveCartItemCommandIsNotConstructed = errors.New(
		"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
	)
	ErrClearCartCommandIsNotConstructed = errors.New(
		"ClearCartCommand must be created via NewClearCartCommand constructor",
	)
)

// GetOrCreateCartCommand returns the user's cart, creating it on first use.
type GetOrCreateCartCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetOrCreateCartCommand(userID kernel.UUID) (GetOrCreateCartCommand, error) {
	if err := userID.Validate(); err != nil {
		return GetOrCreateCartCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	return GetOrCreateCartCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c GetOrCreateCartCommand) Validate() error {
	return c.guard.Validate(ErrGetOrCreateCartCommandIsNotConstructed)
}

func (c GetOrCreateCartCommand) UserID() kernel.UUID {
	return c.userID
}

// AddCartItemCommand adds quantity units of a product to the user's cart.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(userID, productID, 3)
//	if err != nil {
//	    return err // quantity < 1 is rejected here
//	}
//	cart, err := handler.Handle(ctx, cmd)
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(userID, productID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.userID = userID
	return nil
}

func (c *AddCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	c.productID = productID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	c.quantity = quantity
	return nil
}

// SetCartItemQuantityCommand sets the quantity of one cart line; zero or less removes it.
type SetCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewSetCartItemQuantityCommand(userID, itemID kernel.UUID, quantity int) (SetCartItemQuantityCommand, error) {
	if err := errors.Join(userID.Validate(), itemID.Validate()); err != nil {
		return SetCartItemQuantityCommand{}, errs.NewValueIsRequiredErrorWithCause("cart item", err)
	}
	return SetCartItemQuantityCommand{
		userID:   userID,
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetCartItemQuantityCommandIsNotConstructed)
}

func (c SetCartItemQuantityCommand) UserID() kernel.UUID {
	return c.userID
}

func (c SetCartItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c SetCartItemQuantityCommand) Quantity() int {
	return c.quantity
}

type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(userID, itemID kernel.UUID) (RemoveCartItemCommand, error) {
	if err := errors.Join(userID.Validate(), itemID.Validate()); err != nil {
		return RemoveCartItemCommand{}, errs.NewValueIsRequiredErrorWithCause("cart item", err)
	}
	return RemoveCartItemCommand{userID: userID, itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RemoveCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

type ClearCartCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewClearCartCommand(userID kernel.UUID) (ClearCartCommand, error) {
	if err := userID.Validate(); err != nil {
		return ClearCartCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	return ClearCartCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) UserID() kernel.UUID {
	return c.userID
}
