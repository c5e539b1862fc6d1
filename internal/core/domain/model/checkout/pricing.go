package checkout

import "github.com/shopspring/decimal"

// Pricing is the price breakdown of a checkout.
// Total = Subtotal - Discount + DeliveryFee, with no rounding applied.
type Pricing struct {
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// NewPricing derives the total from its parts.
func NewPricing(subtotal, discount, deliveryFee decimal.Decimal) Pricing {
	return Pricing{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: deliveryFee,
		Total:       subtotal.Sub(discount).Add(deliveryFee),
	}
}

// SubtotalOnly is the breakdown of a checkout that has no discount or fee yet.
func SubtotalOnly(subtotal decimal.Decimal) Pricing {
	return NewPricing(subtotal, decimal.Zero, decimal.Zero)
}
