package cart

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart is the per-user pre-order container. There is at most one cart per user
// and at most one line per product; total always equals the sum of line prices.
type Cart struct {
	id        kernel.UUID
	userID    kernel.UUID
	items     []*Item
	total     decimal.Decimal
	updatedAt time.Time

	isConstructed bool
}

// NewCart creates an empty cart for userID.
func NewCart(id, userID kernel.UUID) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("cart id", err)
	}
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	return &Cart{id: id, userID: userID, total: decimal.Zero, isConstructed: true}, nil
}

// RestoreCart rebuilds a persisted cart and recomputes its total from the lines.
func RestoreCart(id, userID kernel.UUID, items []*Item, updatedAt time.Time) *Cart {
	c := &Cart{id: id, userID: userID, items: items, updatedAt: updatedAt, isConstructed: true}
	c.recalculate()
	return c
}

func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

func (c *Cart) ID() kernel.UUID {
	return c.id
}

func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

func (c *Cart) Items() []*Item {
	items := make([]*Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Total() decimal.Decimal {
	return c.total
}

func (c *Cart) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Item finds a line by its id.
func (c *Cart) Item(itemID kernel.UUID) (*Item, bool) {
	for _, item := range c.items {
		if item.id.IsEqual(itemID) {
			return item, true
		}
	}
	return nil, false
}

// AddProduct merges quantity into the line for productID, creating the line
// if needed. The line is repriced with unitPrice, the current catalog price.
func (c *Cart) AddProduct(productID kernel.UUID, unitPrice decimal.Decimal, quantity int, now time.Time) (*Item, error) {
	if quantity < 1 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	for _, item := range c.items {
		if item.productID.IsEqual(productID) {
			if err := item.reprice(item.quantity+quantity, unitPrice); err != nil {
				return nil, err
			}
			c.touch(now)
			return item, nil
		}
	}

	item, err := NewItem(kernel.NewUUID(), productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	c.items = append(c.items, item)
	c.touch(now)
	return item, nil
}

// SetItemQuantity sets the quantity of a line, repricing it. A quantity of
// zero or less removes the line.
func (c *Cart) SetItemQuantity(itemID kernel.UUID, quantity int, unitPrice decimal.Decimal, now time.Time) error {
	if quantity <= 0 {
		return c.RemoveItem(itemID, now)
	}
	item, ok := c.Item(itemID)
	if !ok {
		return errs.NewObjectNotFoundError("cart item", itemID.String())
	}
	if err := item.reprice(quantity, unitPrice); err != nil {
		return err
	}
	c.touch(now)
	return nil
}

func (c *Cart) RemoveItem(itemID kernel.UUID, now time.Time) error {
	for idx, item := range c.items {
		if item.id.IsEqual(itemID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			c.touch(now)
			return nil
		}
	}
	return errs.NewObjectNotFoundErrorWithCause("cart item", itemID.String(),
		fmt.Errorf("cart %s has no such item", c.id))
}

// Clear removes every line.
func (c *Cart) Clear(now time.Time) {
	c.items = nil
	c.touch(now)
}

func (c *Cart) touch(now time.Time) {
	c.updatedAt = now
	c.recalculate()
}

func (c *Cart) recalculate() {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.price)
	}
	c.total = total
}
