package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// AcceptDeliveryCommandHandler assigns a processing order to the calling
// delivery agent and ships it. A second agent racing for the same order gets
// either an invalid transition (the order is already shipped) or a conflict
// on the assignment.
type AcceptDeliveryCommandHandler struct {
	uowFactory StatusUoWFactory
	dispatcher EffectDispatcher
}

func NewAcceptDeliveryCommandHandler(uowFactory StatusUoWFactory, dispatcher EffectDispatcher) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher}
}

func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) (*delivery.Assignment, error) {
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

	now := time.Now().UTC()
	previous := o.Status()
	transition, err := o.ChangeStatus(cmd.Agent(), order.Shipped, "accepted for delivery", now)
	if err != nil {
		return nil, err
	}

	assignment, err := delivery.NewAssignment(o.ID(), cmd.Agent().ID(), now)
	if err != nil {
		return nil, err
	}
	if err = uow.AssignmentRepository().Add(ctx, assignment); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().UpdateStatus(ctx, o, previous); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ctx, o, transition, services.PlanEffects(transition))
	return assignment, nil
}
