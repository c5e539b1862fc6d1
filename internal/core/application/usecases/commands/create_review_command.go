package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	orderItemID kernel.UUID
	productID   kernel.UUID
	rating      int
	comment     string

	guard guard.ConstructorGuard
}

func NewCreateReviewCommand(
	userID, orderItemID, productID kernel.UUID,
	rating int,
	comment string,
) (CreateReviewCommand, error) {
	if err := errors.Join(userID.Validate(), orderItemID.Validate(), productID.Validate()); err != nil {
		return CreateReviewCommand{}, errs.NewValueIsRequiredErrorWithCause("review", err)
	}
	if rating < review.MinRating || rating > review.MaxRating {
		return CreateReviewCommand{}, errs.NewValueIsOutOfRangeError("rating", rating, review.MinRating, review.MaxRating)
	}
	return CreateReviewCommand{
		userID:      userID,
		orderItemID: orderItemID,
		productID:   productID,
		rating:      rating,
		comment:     comment,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

func (c CreateReviewCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateReviewCommand) OrderItemID() kernel.UUID {
	return c.orderItemID
}

func (c CreateReviewCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateReviewCommand) Rating() int {
	return c.rating
}

func (c CreateReviewCommand) Comment() string {
	return c.comment
}
