package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// RecordTrackingCommandHandler appends a position to the tracking of a
// shipped order. Only the agent holding the delivery assignment may report,
// and the order row is locked so the stamped status cannot go stale before
// commit.
type RecordTrackingCommandHandler struct {
	uowFactory TrackingUoWFactory
}

func NewRecordTrackingCommandHandler(uowFactory TrackingUoWFactory) RecordTrackingCommandHandler {
	return RecordTrackingCommandHandler{uowFactory: uowFactory}
}

func (h *RecordTrackingCommandHandler) Handle(ctx context.Context, cmd RecordTrackingCommand) (*delivery.TrackingPoint, error) {
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

	assignment, err := uow.AssignmentRepository().GetByOrder(ctx, o.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil, errs.NewForbiddenErrorWithCause("record tracking",
			fmt.Errorf("order %s has no delivery agent", o.ID()))
	case err != nil:
		return nil, err
	}
	if !assignment.IsCarriedBy(cmd.Agent().ID()) {
		return nil, errs.NewForbiddenErrorWithCause("record tracking",
			fmt.Errorf("order %s is carried by another agent", o.ID()))
	}

	point, err := delivery.NewTrackingPoint(kernel.NewUUID(), assignment, cmd.Location(), o.Status(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err = uow.TrackingRepository().Add(ctx, point); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return point, nil
}
