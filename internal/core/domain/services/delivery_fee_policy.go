package services

import (
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DeliveryFeePolicy prices the delivery leg of a checkout.
type DeliveryFeePolicy interface {
	// Fee returns zero for pickup. For delivery it requires an address.
	Fee(addressID kernel.UUID, method checkout.DeliveryMethod) (decimal.Decimal, error)
}

// DistanceFeePolicy charges a base fee plus a distance surcharge. Addresses are
// owned by another service, so the distance band is derived deterministically
// from the address id: the same address always costs the same.
type DistanceFeePolicy struct {
	base         decimal.Decimal
	maxSurcharge decimal.Decimal
}

// NewDistanceFeePolicy builds a policy charging base plus up to maxSurcharge.
func NewDistanceFeePolicy(base, maxSurcharge decimal.Decimal) DistanceFeePolicy {
	return DistanceFeePolicy{base: base, maxSurcharge: maxSurcharge}
}

// NewDefaultDeliveryFeePolicy charges 8.50 plus up to 4.99.
func NewDefaultDeliveryFeePolicy() DistanceFeePolicy {
	return NewDistanceFeePolicy(decimal.RequireFromString("8.50"), decimal.RequireFromString("4.99"))
}

func (p DistanceFeePolicy) Fee(addressID kernel.UUID, method checkout.DeliveryMethod) (decimal.Decimal, error) {
	switch method {
	case checkout.Pickup, checkout.NoDeliveryMethod:
		return decimal.Zero, nil
	case checkout.Delivery:
		if err := addressID.Validate(); err != nil {
			return decimal.Zero, errs.NewValueIsRequiredErrorWithCause("addressId", err)
		}
		return p.base.Add(p.surcharge(addressID)), nil
	default:
		return decimal.Zero, errs.NewValueIsInvalidError("deliveryMethod")
	}
}

// surcharge maps the address id onto [0, maxSurcharge] in cent steps.
func (p DistanceFeePolicy) surcharge(addressID kernel.UUID) decimal.Decimal {
	steps := p.maxSurcharge.Shift(2).IntPart()
	if steps <= 0 {
		return decimal.Zero
	}
	var sum int64
	for _, b := range addressID.Bytes() {
		sum = sum*31 + int64(b)
		sum %= 1_000_003
	}
	return decimal.NewFromInt(sum % (steps + 1)).Shift(-2)
}
