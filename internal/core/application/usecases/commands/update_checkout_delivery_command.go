package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateCheckoutDeliveryCommandIsNotConstructed = errors.New(
	"UpdateCheckoutDeliveryCommand must be created via NewUpdateCheckoutDeliveryCommand constructor",
)

// UpdateCheckoutDeliveryCommand sets address, delivery method and coupon of
// a pending order's checkout. addressID may be the zero UUID for pickup.
type UpdateCheckoutDeliveryCommand struct { //nolint:recvcheck //using for validation
	userID         kernel.UUID
	orderID        kernel.UUID
	addressID      kernel.UUID
	deliveryMethod checkout.DeliveryMethod
	couponCode     string

	guard guard.ConstructorGuard
}

func NewUpdateCheckoutDeliveryCommand(
	userID, orderID, addressID kernel.UUID,
	deliveryMethod string,
	couponCode string,
) (UpdateCheckoutDeliveryCommand, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate()); err != nil {
		return UpdateCheckoutDeliveryCommand{}, errs.NewValueIsRequiredErrorWithCause("checkout", err)
	}
	method, err := checkout.ParseDeliveryMethod(deliveryMethod)
	if err != nil {
		return UpdateCheckoutDeliveryCommand{}, err
	}
	return UpdateCheckoutDeliveryCommand{
		userID:         userID,
		orderID:        orderID,
		addressID:      addressID,
		deliveryMethod: method,
		couponCode:     services.NormalizeCouponCode(couponCode),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCheckoutDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCheckoutDeliveryCommandIsNotConstructed)
}

func (c UpdateCheckoutDeliveryCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateCheckoutDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateCheckoutDeliveryCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c UpdateCheckoutDeliveryCommand) DeliveryMethod() checkout.DeliveryMethod {
	return c.deliveryMethod
}

func (c UpdateCheckoutDeliveryCommand) CouponCode() string {
	return c.couponCode
}
