package services

import (
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// PriceCalculator computes the checkout price breakdown.
//
//	discount = subtotal × couponRate
//	total    = subtotal - discount + deliveryFee
//
// No rounding is applied: 17.97 with DESCONTO10 and pickup yields a discount
// of 1.797 and a total of 16.173. Rounding, if any, is a presentation concern.
type PriceCalculator struct {
	coupons CouponPolicy
	fees    DeliveryFeePolicy
}

func NewPriceCalculator(coupons CouponPolicy, fees DeliveryFeePolicy) PriceCalculator {
	return PriceCalculator{coupons: coupons, fees: fees}
}

// NewDefaultPriceCalculator wires the default coupon table and fee policy.
func NewDefaultPriceCalculator() PriceCalculator {
	return NewPriceCalculator(NewDefaultCouponPolicy(), NewDefaultDeliveryFeePolicy())
}

// Calculate returns the breakdown for subtotal. It fails with a
// ValueIsInvalidError on a malformed coupon or unknown method and with a
// ValueIsRequiredError when delivery is chosen without an address.
func (c PriceCalculator) Calculate(
	subtotal decimal.Decimal,
	addressID kernel.UUID,
	method checkout.DeliveryMethod,
	couponCode string,
) (checkout.Pricing, error) {
	rate, err := c.coupons.Rate(couponCode)
	if err != nil {
		return checkout.Pricing{}, err
	}
	fee, err := c.fees.Fee(addressID, method)
	if err != nil {
		return checkout.Pricing{}, err
	}
	return checkout.NewPricing(subtotal, subtotal.Mul(rate), fee), nil
}
