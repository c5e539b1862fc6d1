package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"
)

// CreateReviewCommandHandler records a product review for a delivered order
// item. Only the buyer may review, only once per item, and only for the
// product that item refers to.
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

func NewCreateReviewCommandHandler(uowFactory ReviewUoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{uowFactory: uowFactory}
}

func (h *CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) (*review.Review, error) {
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

	o, err := uow.OrderRepository().GetByItem(ctx, cmd.OrderItemID())
	if err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(cmd.UserID()) {
		return nil, errs.NewForbiddenError("review an item of another user's order")
	}
	if o.Status() != order.Delivered {
		return nil, errs.NewValueIsInvalidErrorWithCause("order status",
			errors.New("only items of delivered orders can be reviewed"))
	}
	item, ok := o.Item(cmd.OrderItemID())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order item", cmd.OrderItemID().String())
	}
	if !item.ProductID().IsEqual(cmd.ProductID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("order item %s is not product %s", item.ID(), cmd.ProductID()))
	}

	reviewed, err := uow.ReviewRepository().ExistsForOrderItem(ctx, cmd.UserID(), cmd.OrderItemID())
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, errs.NewConflictError("review")
	}

	r, err := review.NewReview(cmd.UserID(), cmd.OrderItemID(), cmd.ProductID(), cmd.Rating(), cmd.Comment(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err = uow.ReviewRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
