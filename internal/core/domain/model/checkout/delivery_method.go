package checkout

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// DeliveryMethod is how the buyer receives the order.
type DeliveryMethod string

const (
	// NoDeliveryMethod means the buyer has not chosen yet.
	NoDeliveryMethod DeliveryMethod = ""
	Delivery         DeliveryMethod = "delivery"
	Pickup           DeliveryMethod = "pickup"
)

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch m := DeliveryMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case Delivery, Pickup:
		return m, nil
	default:
		return NoDeliveryMethod, errs.NewValueIsInvalidErrorWithCause("deliveryMethod",
			fmt.Errorf("%q must be delivery or pickup", s))
	}
}

func (m DeliveryMethod) String() string {
	return string(m)
}
