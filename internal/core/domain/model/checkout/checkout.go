package checkout

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

var (
	ErrCheckoutIsNotConstructed = errors.New("Checkout must be created via NewCheckout constructor")

	// ErrCheckoutConfirmed is returned for changes to a checkout that was already paid.
	ErrCheckoutConfirmed = errs.NewValueIsInvalidErrorWithCause("checkout", errors.New("checkout is already confirmed"))
)

// Status of the checkout session itself, independent from the order status.
type Status string

const (
	Initiated Status = "initiated"
	Confirmed Status = "confirmed"
)

// Checkout is the pricing session bound one-to-one to a pending order.
// Address, delivery method and coupon may only change while the order is
// pending and the checkout is not yet confirmed.
type Checkout struct {
	id             kernel.UUID
	userID         kernel.UUID
	cartID         kernel.UUID
	orderID        kernel.UUID
	addressID      kernel.UUID
	deliveryMethod DeliveryMethod
	couponCode     string
	pricing        Pricing
	status         Status
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

func NewCheckout(id, userID, cartID, orderID kernel.UUID, pricing Pricing, now time.Time) (*Checkout, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), cartID.Validate(), orderID.Validate()); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("checkout", err)
	}
	return &Checkout{
		id:            id,
		userID:        userID,
		cartID:        cartID,
		orderID:       orderID,
		pricing:       pricing,
		status:        Initiated,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// Snapshot is the persisted state used by RestoreCheckout.
type Snapshot struct {
	ID             kernel.UUID
	UserID         kernel.UUID
	CartID         kernel.UUID
	OrderID        kernel.UUID
	AddressID      kernel.UUID
	DeliveryMethod DeliveryMethod
	CouponCode     string
	Pricing        Pricing
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func RestoreCheckout(s Snapshot) *Checkout {
	return &Checkout{
		id:             s.ID,
		userID:         s.UserID,
		cartID:         s.CartID,
		orderID:        s.OrderID,
		addressID:      s.AddressID,
		deliveryMethod: s.DeliveryMethod,
		couponCode:     s.CouponCode,
		pricing:        s.Pricing,
		status:         s.Status,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		isConstructed:  true,
	}
}

func (c *Checkout) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCheckoutIsNotConstructed
	}
	return nil
}

func (c *Checkout) ID() kernel.UUID { return c.id }
func (c *Checkout) UserID() kernel.UUID { return c.userID }
func (c *Checkout) CartID() kernel.UUID { return c.cartID }
func (c *Checkout) OrderID() kernel.UUID { return c.orderID }
func (c *Checkout) AddressID() kernel.UUID { return c.addressID }
func (c *Checkout) DeliveryMethod() DeliveryMethod { return c.deliveryMethod }
func (c *Checkout) CouponCode() string { return c.couponCode }
func (c *Checkout) Pricing() Pricing { return c.pricing }
func (c *Checkout) Status() Status { return c.status }
func (c *Checkout) CreatedAt() time.Time { return c.createdAt }
func (c *Checkout) UpdatedAt() time.Time { return c.updatedAt }

// ApplyDelivery records the buyer's address, method and coupon together with
// the recomputed pricing. orderStatus is the current status of the bound order.
func (c *Checkout) ApplyDelivery(
	orderStatus order.Status,
	addressID kernel.UUID,
	method DeliveryMethod,
	couponCode string,
	pricing Pricing,
	now time.Time,
) error {
	if c.status == Confirmed {
		return ErrCheckoutConfirmed
	}
	if orderStatus != order.Pending {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("checkout of a %s order cannot be changed", orderStatus))
	}
	c.addressID = addressID
	c.deliveryMethod = method
	c.couponCode = couponCode
	c.pricing = pricing
	c.updatedAt = now
	return nil
}

// Confirm marks the session as paid.
func (c *Checkout) Confirm(now time.Time) error {
	if c.status == Confirmed {
		return ErrCheckoutConfirmed
	}
	c.status = Confirmed
	c.updatedAt = now
	return nil
}
