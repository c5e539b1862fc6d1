package order

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one purchased line of an order. It belongs to exactly one producer
// and freezes the product price at purchase time.
type Item struct {
	id         kernel.UUID
	productID  kernel.UUID
	producerID kernel.UUID
	quantity   int
	unitPrice  decimal.Decimal
	totalPrice decimal.Decimal
	notes      string

	isConstructed bool
}

// NewItem validates the line and computes totalPrice = unitPrice × quantity.
func NewItem(
	id, productID, producerID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
	notes string,
) (*Item, error) {
	item := &Item{isConstructed: true, notes: strings.TrimSpace(notes)}
	if err := errors.Join(
		item.setID(id),
		item.setProduct(productID, producerID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}
	item.totalPrice = item.unitPrice.Mul(decimal.NewFromInt(int64(item.quantity)))
	return item, nil
}

// RestoreItem rebuilds a persisted line without recomputing its totals.
func RestoreItem(
	id, productID, producerID kernel.UUID,
	quantity int,
	unitPrice, totalPrice decimal.Decimal,
	notes string,
) *Item {
	return &Item{
		id:            id,
		productID:     productID,
		producerID:    producerID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		totalPrice:    totalPrice,
		notes:         notes,
		isConstructed: true,
	}
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID { return i.id }
func (i *Item) ProductID() kernel.UUID { return i.productID }
func (i *Item) ProducerID() kernel.UUID { return i.producerID }
func (i *Item) Quantity() int { return i.quantity }
func (i *Item) UnitPrice() decimal.Decimal { return i.unitPrice }
func (i *Item) TotalPrice() decimal.Decimal { return i.totalPrice }
func (i *Item) Notes() string { return i.notes }

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item id", err)
	}
	i.id = id
	return nil
}

func (i *Item) setProduct(productID, producerID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if err := producerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("producerId", err)
	}
	i.productID = productID
	i.producerID = producerID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("unitPrice", price.String(), 0, "unbounded")
	}
	i.unitPrice = price
	return nil
}
