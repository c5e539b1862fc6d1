// Package sideeffects runs the work owed to the outside world once an order
// change has been committed: buyer notifications and device pushes.
//
// Nothing here can fail the request that caused the change. Errors are
// logged and the order stays as committed.
package sideeffects

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

const DefaultPushTimeout = 10 * time.Second

type (
	// UoW is the slice of the unit of work the dispatcher writes through.
	UoW interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		NotificationRepository() ports.NotificationRepository
		DeviceTokenRepository() ports.DeviceTokenRepository
	}

	UoWFactory interface {
		Create() UoW
	}
)

// Dispatcher implements the effect dispatcher used by the status commands.
type Dispatcher struct {
	uowFactory  UoWFactory
	push        ports.PushTransport
	pushTimeout time.Duration
	transitions *prometheus.CounterVec
	logger      *slog.Logger
	now         func() time.Time

	pending sync.WaitGroup
}

// NewDispatcher registers the order_transitions_total counter on reg.
func NewDispatcher(
	uowFactory UoWFactory,
	push ports.PushTransport,
	pushTimeout time.Duration,
	reg prometheus.Registerer,
	logger *slog.Logger,
) *Dispatcher {
	if pushTimeout <= 0 {
		pushTimeout = DefaultPushTimeout
	}
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Name:      "order_transitions_total",
		Help:      "Committed order status transitions.",
	}, []string{"from", "to"})
	reg.MustRegister(transitions)

	return &Dispatcher{
		uowFactory:  uowFactory,
		push:        push,
		pushTimeout: pushTimeout,
		transitions: transitions,
		logger:      logger.With("component", "sideeffects.Dispatcher"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Dispatch runs effects in order. PublishDelivered is skipped: the event was
// written to the outbox with the transition.
func (d *Dispatcher) Dispatch(ctx context.Context, o *order.Order, t order.Transition, effects []services.Effect) {
	d.transitions.WithLabelValues(t.From.String(), t.To.String()).Inc()

	for _, effect := range effects {
		var err error
		switch effect {
		case services.NotifyShipped:
			err = d.notifyShipped(ctx, o)
		case services.NotifyDelivered:
			err = d.notifyDelivered(ctx, o)
		case services.PublishDelivered:
			continue
		}
		if err != nil {
			d.logger.ErrorContext(ctx, "side effect failed",
				"effect", effect.String(), "order_id", o.ID().String(), "error", err)
		}
	}
}

// ReadyForPickup tells the buyer that producerID's part of the order can be collected.
func (d *Dispatcher) ReadyForPickup(ctx context.Context, o *order.Order, producerID kernel.UUID, message string) {
	n, err := notification.NewNotification(o.UserID(), o.ID(), notification.OrderReady,
		"Order ready for pickup", message,
		map[string]string{"producerId": producerID.String()}, d.now())
	if err == nil {
		_, err = d.store(ctx, n, nil)
	}
	if err != nil {
		d.logger.ErrorContext(ctx, "ready notification failed", "order_id", o.ID().String(), "error", err)
		return
	}
	d.Push(ctx, n)
}

// Wait blocks until every push started so far has finished.
func (d *Dispatcher) Wait() {
	d.pending.Wait()
}

// notifyShipped is skipped when the delivered notification is already stored:
// the delivered effect of a later transition may run first.
func (d *Dispatcher) notifyShipped(ctx context.Context, o *order.Order) error {
	body := "Your order is on its way."
	data := map[string]string{}
	if code := o.TrackingCode(); code != "" {
		body = fmt.Sprintf("Your order is on its way. Tracking code: %s", code)
		data["trackingCode"] = code
	}
	n, err := notification.NewNotification(o.UserID(), o.ID(), notification.OrderShipped,
		"Order shipped", body, data, d.now())
	if err != nil {
		return err
	}
	stored, err := d.store(ctx, n, func(ctx context.Context, repo ports.NotificationRepository) (bool, error) {
		delivered, err := repo.ExistsByOrderAndType(ctx, o.ID(), notification.OrderDelivered)
		return !delivered, err
	})
	if err != nil {
		return err
	}
	if !stored {
		d.logger.DebugContext(ctx, "order already delivered, shipped notification skipped",
			"order_id", o.ID().String())
		return nil
	}
	d.Push(ctx, n)
	return nil
}

// notifyDelivered swaps the shipped notification for a delivered one in one transaction.
func (d *Dispatcher) notifyDelivered(ctx context.Context, o *order.Order) error {
	n, err := notification.NewNotification(o.UserID(), o.ID(), notification.OrderDelivered,
		"Order delivered", "Your order has been delivered. Enjoy!", nil, d.now())
	if err != nil {
		return err
	}
	_, err = d.store(ctx, n, func(ctx context.Context, repo ports.NotificationRepository) (bool, error) {
		removed, err := repo.DeleteByOrderAndType(ctx, o.ID(), notification.OrderShipped)
		if err != nil {
			return false, err
		}
		d.logger.DebugContext(ctx, "shipped notifications removed",
			"order_id", o.ID().String(), "count", removed)
		return true, nil
	})
	if err != nil {
		return err
	}
	d.Push(ctx, n)
	return nil
}

// store adds n in its own transaction, holding the order's notification lock.
// When guard is set it runs first and may veto the insert.
func (d *Dispatcher) store(
	ctx context.Context,
	n *notification.Notification,
	guard func(ctx context.Context, repo ports.NotificationRepository) (bool, error),
) (bool, error) {
	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	if err := repo.LockOrder(ctx, n.OrderID()); err != nil {
		return false, err
	}
	if guard != nil {
		proceed, err := guard(ctx, repo)
		if err != nil || !proceed {
			return false, err
		}
	}
	if err := repo.Add(ctx, n); err != nil {
		return false, err
	}
	return true, uow.Commit(ctx)
}

// Push sends n to every active device of the recipient without holding
// up the caller. The push outlives the request context but not pushTimeout.
func (d *Dispatcher) Push(ctx context.Context, n *notification.Notification) {
	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.pushTimeout)
	d.pending.Add(1)
	go func() {
		defer d.pending.Done()
		defer cancel()
		d.pushToUser(pushCtx, n)
	}()
}

func (d *Dispatcher) pushToUser(ctx context.Context, n *notification.Notification) {
	tokens := d.uowFactory.Create().DeviceTokenRepository()
	active, err := tokens.ActiveTokens(ctx, n.UserID())
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to load device tokens", "user_id", n.UserID().String(), "error", err)
		return
	}
	if len(active) == 0 {
		return
	}

	invalid, err := d.push.Send(ctx, active, ports.PushMessage{Title: n.Title(), Body: n.Body(), Data: n.Data()})
	if err != nil {
		d.logger.WarnContext(ctx, "push failed",
			"user_id", n.UserID().String(), "type", string(n.Type()), "error", err)
	}
	if len(invalid) == 0 {
		return
	}
	if err = tokens.Deactivate(ctx, invalid); err != nil {
		d.logger.ErrorContext(ctx, "failed to deactivate device tokens", "count", len(invalid), "error", err)
		return
	}
	d.logger.InfoContext(ctx, "device tokens deactivated", "count", len(invalid))
}
