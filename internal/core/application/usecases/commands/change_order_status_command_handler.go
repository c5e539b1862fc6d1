package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler is the status transition engine.
//
// Workflow:
//   - lock the order row (SELECT ... FOR UPDATE)
//   - authorize the actor, check the optional expected status, apply the transition
//   - write the status guarded by the previous value and append the history entry
//   - for a delivery, record order.delivered in the outbox in the same transaction
//   - commit, then hand the planned side effects to the dispatcher
//
// Two concurrent requests on one order are therefore serialized: the second
// one observes the status written by the first.
type ChangeOrderStatusCommandHandler struct {
	uowFactory     StatusUoWFactory
	dispatcher     EffectDispatcher
	deliveredTopic string
}

func NewChangeOrderStatusCommandHandler(
	uowFactory StatusUoWFactory,
	dispatcher EffectDispatcher,
	deliveredTopic string,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:     uowFactory,
		dispatcher:     dispatcher,
		deliveredTopic: deliveredTopic,
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	if err = h.authorize(ctx, uow, o, cmd); err != nil {
		return nil, err
	}
	if err = o.ExpectStatus(cmd.Expected()); err != nil {
		return nil, err
	}

	previous := o.Status()
	transition, err := o.ChangeStatus(cmd.Actor(), cmd.Status(), cmd.Notes(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().UpdateStatus(ctx, o, previous); err != nil {
		return nil, err
	}

	effects := services.PlanEffects(transition)
	if services.Has(effects, services.PublishDelivered) {
		if err = recordDelivered(ctx, uow, o, h.deliveredTopic, transition.At); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ctx, o, transition, effects)
	return o, nil
}

// authorize narrows delivery agents to completing orders they carry. Every
// other rule is enforced by the order itself.
func (h *ChangeOrderStatusCommandHandler) authorize(
	ctx context.Context,
	uow StatusUoW,
	o *order.Order,
	cmd ChangeOrderStatusCommand,
) error {
	if err := o.Authorize(cmd.Actor(), cmd.Status()); err != nil {
		return err
	}
	if !cmd.Actor().Is(kernel.RoleDeliveryAgent) {
		return nil
	}
	if cmd.Status() != order.Delivered {
		return errs.NewForbiddenErrorWithCause("update order status",
			errors.New("delivery agents accept orders through the accept operation"))
	}

	assignment, err := uow.AssignmentRepository().GetByOrder(ctx, o.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewForbiddenErrorWithCause("update order status", err)
	}
	if err != nil {
		return err
	}
	if !assignment.IsCarriedBy(cmd.Actor().ID()) {
		return errs.NewForbiddenErrorWithCause("update order status",
			fmt.Errorf("order %s is assigned to another delivery agent", o.ID()))
	}
	return nil
}

// recordDelivered writes the order.delivered event to the outbox.
func recordDelivered(ctx context.Context, uow OutboxRepoFactory, o *order.Order, topic string, at time.Time) error {
	eventID := kernel.NewUUID()
	payload, err := order.NewDeliveredEvent(eventID.String(), o, at).Marshal()
	if err != nil {
		return err
	}
	return uow.OutboxRepository().Add(ctx, ports.OutboxMessage{
		ID:        kernel.NewUUID(),
		EventID:   eventID,
		Topic:     topic,
		Key:       o.ID().String(),
		Payload:   payload,
		CreatedAt: at,
	})
}
