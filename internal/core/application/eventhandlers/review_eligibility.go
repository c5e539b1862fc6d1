// Package eventhandlers consumes domain events published through the outbox.
package eventhandlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/application/sideeffects"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// Pusher delivers a stored notification to the recipient's devices.
type Pusher interface {
	Push(ctx context.Context, n *notification.Notification)
}

// ReviewEligibilityHandler invites the buyer to review a delivered order.
// Events arrive at least once, so an existing review_available notification
// for the order means the event was already handled. Concurrent redeliveries
// are settled by the unique index on that notification.
type ReviewEligibilityHandler struct {
	uowFactory sideeffects.UoWFactory
	pusher     Pusher
	logger     *slog.Logger
}

func NewReviewEligibilityHandler(
	uowFactory sideeffects.UoWFactory,
	pusher Pusher,
	logger *slog.Logger,
) *ReviewEligibilityHandler {
	return &ReviewEligibilityHandler{
		uowFactory: uowFactory,
		pusher:     pusher,
		logger:     logger.With("component", "ReviewEligibilityHandler"),
	}
}

// Handle matches ports.EventHandler. Malformed payloads are logged and
// acknowledged since redelivering them cannot succeed.
func (h *ReviewEligibilityHandler) Handle(ctx context.Context, payload []byte) error {
	event, err := order.UnmarshalDeliveredEvent(payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "dropping malformed order.delivered event", "error", err)
		return nil
	}
	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		h.logger.ErrorContext(ctx, "dropping order.delivered event", "event_id", event.EventID, "error", err)
		return nil
	}
	userID, err := kernel.UUIDFromString(event.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "dropping order.delivered event", "event_id", event.EventID, "error", err)
		return nil
	}

	n, err := notification.NewNotification(userID, orderID, notification.ReviewAvailable,
		"How was your order?",
		reviewInvitation(len(event.Items)),
		map[string]string{"itemCount": fmt.Sprint(len(event.Items))},
		time.Now().UTC())
	if err != nil {
		return err
	}

	created, err := h.createOnce(ctx, n)
	if err != nil {
		return err
	}
	if !created {
		h.logger.DebugContext(ctx, "review invitation already sent", "order_id", event.OrderID)
		return nil
	}

	h.pusher.Push(ctx, n)
	return nil
}

func (h *ReviewEligibilityHandler) createOnce(ctx context.Context, n *notification.Notification) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	exists, err := repo.ExistsByOrderAndType(ctx, n.OrderID(), notification.ReviewAvailable)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	err = repo.Add(ctx, n)
	if errors.Is(err, errs.ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, uow.Commit(ctx)
}

func reviewInvitation(items int) string {
	if items == 1 {
		return "Your order was delivered. Tell us what you thought of the product."
	}
	return fmt.Sprintf("Your order was delivered. Tell us what you thought of its %d products.", items)
}
