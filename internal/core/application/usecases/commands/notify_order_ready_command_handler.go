package commands

import (
	"context"
	"time"
)

// NotifyOrderReadyCommandHandler flags an order as ready for pickup, records
// the notice in its history and lets the dispatcher notify the buyer.
type NotifyOrderReadyCommandHandler struct {
	uowFactory StatusUoWFactory
	dispatcher EffectDispatcher
}

func NewNotifyOrderReadyCommandHandler(uowFactory StatusUoWFactory, dispatcher EffectDispatcher) NotifyOrderReadyCommandHandler {
	return NotifyOrderReadyCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher}
}

// Handle returns the message sent to the buyer.
func (h *NotifyOrderReadyCommandHandler) Handle(ctx context.Context, cmd NotifyOrderReadyCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	previous := o.Status()
	message, err := o.MarkReadyForPickup(cmd.Producer(), cmd.Message(), time.Now().UTC())
	if err != nil {
		return "", err
	}
	if err = uow.OrderRepository().UpdateStatus(ctx, o, previous); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	h.dispatcher.ReadyForPickup(ctx, o, cmd.Producer().ID(), message)
	return message, nil
}
