package services

import (
	"fmt"
	"regexp"
	"strings"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var couponFormat = regexp.MustCompile(`^[A-Z0-9]{1,32}$`)

// CouponPolicy resolves a coupon code into a discount rate in [0, 1].
type CouponPolicy interface {
	// Rate returns the discount rate for code. An empty code and an unknown
	// but well-formed code both yield zero. A malformed code is a
	// ValueIsInvalidError.
	Rate(code string) (decimal.Decimal, error)
}

// StaticCouponPolicy is a fixed code → rate table.
//
// Example:
//
//	policy := NewDefaultCouponPolicy()
//	rate, _ := policy.Rate("DESCONTO10") // 0.10
type StaticCouponPolicy struct {
	rates map[string]decimal.Decimal
}

// NewStaticCouponPolicy copies rates; codes are normalized to upper case.
func NewStaticCouponPolicy(rates map[string]decimal.Decimal) StaticCouponPolicy {
	normalized := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		normalized[strings.ToUpper(code)] = rate
	}
	return StaticCouponPolicy{rates: normalized}
}

// NewDefaultCouponPolicy returns the marketplace coupon table.
func NewDefaultCouponPolicy() StaticCouponPolicy {
	return NewStaticCouponPolicy(map[string]decimal.Decimal{
		"DESCONTO10":  decimal.RequireFromString("0.10"),
		"DESCONTO20":  decimal.RequireFromString("0.20"),
		"FRETEGRATIS": decimal.RequireFromString("0.05"),
	})
}

// NormalizeCouponCode trims and upper-cases a user supplied code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (p StaticCouponPolicy) Rate(code string) (decimal.Decimal, error) {
	code = NormalizeCouponCode(code)
	if code == "" {
		return decimal.Zero, nil
	}
	if !couponFormat.MatchString(code) {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("couponCode",
			fmt.Errorf("%q must be 1-32 letters or digits", code))
	}
	rate, ok := p.rates[code]
	if !ok {
		return decimal.Zero, nil
	}
	return rate, nil
}
