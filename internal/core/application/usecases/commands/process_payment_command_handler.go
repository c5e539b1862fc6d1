package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ProcessPaymentCommandHandler charges a pending order through the payment
// authorizer. The authorizer call is bounded by a timeout; running out of
// time counts as a decline. On approval the order is marked paid, the buyer's
// cart is cleared and the checkout confirmed in one transaction, after which
// product stock is debited on a best-effort basis. An order is settled at
// most once, so stock is never debited twice for it.
type ProcessPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	authorizer ports.PaymentAuthorizer
	timeout    time.Duration
	logger     *slog.Logger
}

func NewProcessPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	authorizer ports.PaymentAuthorizer,
	timeout time.Duration,
	logger *slog.Logger,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		timeout:    timeout,
		logger:     logger.With("component", "ProcessPaymentCommandHandler"),
	}
}

func (h *ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) (ports.PaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ports.PaymentResult{}, err
	}

	o, amount, err := h.loadCharge(ctx, cmd)
	if err != nil {
		return ports.PaymentResult{}, err
	}

	result, err := h.authorize(ctx, o, amount, cmd.Method())
	if err != nil {
		return ports.PaymentResult{}, err
	}
	if result.Status != ports.PaymentApproved {
		return result, nil
	}

	if err = h.settle(ctx, cmd, o); err != nil {
		if errors.Is(err, order.ErrOrderAlreadyPaid) {
			h.logger.WarnContext(ctx, "payment approved for an order settled concurrently",
				"order_id", o.ID().String(), "transaction_id", result.TransactionID)
		}
		return ports.PaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.CatalogRepository().DecreaseStockForOrder(ctx, o.ID()); err != nil {
		h.logger.ErrorContext(ctx, "failed to decrease stock after payment",
			"order_id", o.ID().String(), "error", err)
	}

	return result, nil
}

// loadCharge returns the order and the amount to charge: the checkout total
// when a checkout exists, the order total otherwise. Paid orders and
// confirmed checkouts are rejected before the authorizer is called.
func (h *ProcessPaymentCommandHandler) loadCharge(
	ctx context.Context,
	cmd ProcessPaymentCommand,
) (*order.Order, decimal.Decimal, error) {
	uow := h.uowFactory.Create()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, decimal.Zero, err
	}
	if !o.IsOwnedBy(cmd.UserID()) {
		return nil, decimal.Zero, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}
	if o.IsPaid() {
		return nil, decimal.Zero, order.ErrOrderAlreadyPaid
	}
	if o.Status() != order.Pending {
		return nil, decimal.Zero, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("order %s is %s and cannot be paid", o.ID(), o.Status()))
	}

	session, err := uow.CheckoutRepository().GetByOrder(ctx, o.ID())
	switch {
	case err == nil:
		if session.Status() == checkout.Confirmed {
			return nil, decimal.Zero, checkout.ErrCheckoutConfirmed
		}
		return o, session.Pricing().Total, nil
	case errors.Is(err, errs.ErrObjectNotFound):
		return o, o.TotalPrice(), nil
	default:
		return nil, decimal.Zero, err
	}
}

func (h *ProcessPaymentCommandHandler) authorize(
	ctx context.Context,
	o *order.Order,
	amount decimal.Decimal,
	method string,
) (ports.PaymentResult, error) {
	payCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	result, err := h.authorizer.ProcessPayment(payCtx, o.ID(), amount, method)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(payCtx.Err(), context.DeadlineExceeded) {
		h.logger.WarnContext(ctx, "payment authorizer timed out, declining",
			"order_id", o.ID().String(), "timeout", h.timeout.String())
		return ports.PaymentResult{Status: ports.PaymentDeclined}, nil
	}
	if err != nil {
		return ports.PaymentResult{}, err
	}
	return result, nil
}

func (h *ProcessPaymentCommandHandler) settle(ctx context.Context, cmd ProcessPaymentCommand, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()

	locked, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
	if err != nil {
		return err
	}
	if err = locked.MarkPaid(now); err != nil {
		return err
	}
	if err = uow.OrderRepository().MarkPaid(ctx, locked); err != nil {
		return err
	}

	c, err := uow.CartRepository().GetByUserForUpdate(ctx, cmd.UserID())
	switch {
	case err == nil:
		c.Clear(now)
		if err = uow.CartRepository().Save(ctx, c); err != nil {
			return err
		}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	session, err := uow.CheckoutRepository().GetByOrder(ctx, o.ID())
	switch {
	case err == nil:
		if err = session.Confirm(now); err != nil {
			return err
		}
		if err = uow.CheckoutRepository().Update(ctx, session); err != nil {
			return err
		}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	return uow.Commit(ctx)
}
