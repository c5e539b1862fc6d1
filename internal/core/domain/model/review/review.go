// Package review models product reviews written against delivered order items.
package review

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating of one delivered order item. A user reviews an item at most once.
type Review struct {
	id          kernel.UUID
	userID      kernel.UUID
	orderItemID kernel.UUID
	productID   kernel.UUID
	rating      int
	comment     string
	createdAt   time.Time
}

func NewReview(userID, orderItemID, productID kernel.UUID, rating int, comment string, now time.Time) (*Review, error) {
	if err := errors.Join(userID.Validate(), orderItemID.Validate(), productID.Validate()); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("review", err)
	}
	if rating < MinRating || rating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	return &Review{
		id:          kernel.NewUUID(),
		userID:      userID,
		orderItemID: orderItemID,
		productID:   productID,
		rating:      rating,
		comment:     strings.TrimSpace(comment),
		createdAt:   now,
	}, nil
}

func RestoreReview(id, userID, orderItemID, productID kernel.UUID, rating int, comment string, createdAt time.Time) *Review {
	return &Review{id: id, userID: userID, orderItemID: orderItemID, productID: productID, rating: rating, comment: comment, createdAt: createdAt}
}

func (r *Review) ID() kernel.UUID {
	return r.id
}

func (r *Review) UserID() kernel.UUID {
	return r.userID
}

func (r *Review) OrderItemID() kernel.UUID {
	return r.orderItemID
}

func (r *Review) ProductID() kernel.UUID {
	return r.productID
}

func (r *Review) Rating() int {
	return r.rating
}

func (r *Review) Comment() string {
	return r.comment
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}
