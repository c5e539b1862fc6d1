package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// UpdateCheckoutDeliveryCommandHandler reprices and persists a checkout after
// the buyer picked an address, a delivery method and optionally a coupon.
// The order row is locked so that a concurrent status change cannot slip in
// between the pending check and the write.
type UpdateCheckoutDeliveryCommandHandler struct {
	uowFactory CheckoutUoWFactory
	calculator services.PriceCalculator
}

func NewUpdateCheckoutDeliveryCommandHandler(
	uowFactory CheckoutUoWFactory,
	calculator services.PriceCalculator,
) UpdateCheckoutDeliveryCommandHandler {
	return UpdateCheckoutDeliveryCommandHandler{uowFactory: uowFactory, calculator: calculator}
}

func (h *UpdateCheckoutDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCheckoutDeliveryCommand,
) (*checkout.Checkout, error) {
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

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(cmd.UserID()) {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	session, err := uow.CheckoutRepository().GetByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	pricing, err := h.calculator.Calculate(session.Pricing().Subtotal, cmd.AddressID(), cmd.DeliveryMethod(), cmd.CouponCode())
	if err != nil {
		return nil, err
	}

	if err = session.ApplyDelivery(o.Status(), cmd.AddressID(), cmd.DeliveryMethod(), cmd.CouponCode(),
		pricing, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err = uow.CheckoutRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return session, nil
}
