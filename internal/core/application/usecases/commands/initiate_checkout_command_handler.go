package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrCartIsEmpty = errs.NewValueIsInvalidErrorWithCause("cart", errors.New("cart is empty"))

// InitiateCheckoutCommandHandler snapshots the cart into a pending order and
// opens a checkout whose subtotal is the order total, priced from the current
// catalog. Order and checkout are written in the same transaction.
type InitiateCheckoutCommandHandler struct {
	uowFactory   CheckoutUoWFactory
	orderCreator OrderCreator
}

func NewInitiateCheckoutCommandHandler(uowFactory CheckoutUoWFactory, orderCreator OrderCreator) InitiateCheckoutCommandHandler {
	return InitiateCheckoutCommandHandler{uowFactory: uowFactory, orderCreator: orderCreator}
}

func (h *InitiateCheckoutCommandHandler) Handle(ctx context.Context, cmd InitiateCheckoutCommand) (*checkout.Checkout, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var carts CartReader = uow.CartRepository()
	c, err := carts.GetByUserForUpdate(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if !c.ID().IsEqual(cmd.CartID()) {
		return nil, errs.NewObjectNotFoundError("cart", cmd.CartID().String())
	}
	if c.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	lines := make([]OrderLine, 0, len(c.Items()))
	for _, item := range c.Items() {
		lines = append(lines, OrderLine{ProductID: item.ProductID(), Quantity: item.Quantity()})
	}
	orderCmd, err := NewCreateOrderCommand(cmd.UserID(), lines, "", "")
	if err != nil {
		return nil, err
	}

	o, err := h.orderCreator.CreateWithin(ctx, uow, orderCmd)
	if err != nil {
		return nil, err
	}

	session, err := checkout.NewCheckout(kernel.NewUUID(), cmd.UserID(), c.ID(), o.ID(),
		checkout.SubtotalOnly(o.TotalPrice()), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err = uow.CheckoutRepository().Add(ctx, session); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return session, nil
}
