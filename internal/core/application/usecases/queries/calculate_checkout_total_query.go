package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCalculateCheckoutTotalQueryIsNotConstructed = errors.New(
	"CalculateCheckoutTotalQuery must be created via NewCalculateCheckoutTotalQuery constructor",
)

// CalculateCheckoutTotalQuery prices an order's checkout for a candidate
// address, delivery method and coupon without persisting anything. Repeating
// it with the same inputs yields the same breakdown.
type CalculateCheckoutTotalQuery struct {
	userID         kernel.UUID
	orderID        kernel.UUID
	addressID      kernel.UUID
	deliveryMethod checkout.DeliveryMethod
	couponCode     string
	guard          guard.ConstructorGuard
}

// NewCalculateCheckoutTotalQuery accepts a zero addressID for pickup.
func NewCalculateCheckoutTotalQuery(
	userID, orderID, addressID kernel.UUID,
	deliveryMethod, couponCode string,
) (CalculateCheckoutTotalQuery, error) {
	if err := userID.Validate(); err != nil {
		return CalculateCheckoutTotalQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if err := orderID.Validate(); err != nil {
		return CalculateCheckoutTotalQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	method, err := checkout.ParseDeliveryMethod(deliveryMethod)
	if err != nil {
		return CalculateCheckoutTotalQuery{}, err
	}
	return CalculateCheckoutTotalQuery{
		userID:         userID,
		orderID:        orderID,
		addressID:      addressID,
		deliveryMethod: method,
		couponCode:     services.NormalizeCouponCode(couponCode),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q CalculateCheckoutTotalQuery) Validate() error {
	return q.guard.Validate(ErrCalculateCheckoutTotalQueryIsNotConstructed)
}

func (q CalculateCheckoutTotalQuery) UserID() kernel.UUID {
	return q.userID
}

func (q CalculateCheckoutTotalQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q CalculateCheckoutTotalQuery) AddressID() kernel.UUID {
	return q.addressID
}

func (q CalculateCheckoutTotalQuery) DeliveryMethod() checkout.DeliveryMethod {
	return q.deliveryMethod
}

func (q CalculateCheckoutTotalQuery) CouponCode() string {
	return q.couponCode
}
