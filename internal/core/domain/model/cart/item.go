package cart

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one cart line. price is the denormalized unitPrice × quantity.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
	price     decimal.Decimal
}

func NewItem(id, productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	if err := errors.Join(id.Validate(), productID.Validate()); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("cart item", err)
	}
	item := &Item{id: id, productID: productID}
	if err := item.reprice(quantity, unitPrice); err != nil {
		return nil, err
	}
	return item, nil
}

func RestoreItem(id, productID kernel.UUID, quantity int, unitPrice, price decimal.Decimal) *Item {
	return &Item{id: id, productID: productID, quantity: quantity, unitPrice: unitPrice, price: price}
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i *Item) Price() decimal.Decimal {
	return i.price
}

func (i *Item) reprice(quantity int, unitPrice decimal.Decimal) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if unitPrice.IsNegative() {
		return errs.NewValueIsOutOfRangeError("unitPrice", unitPrice.String(), 0, "unbounded")
	}
	i.quantity = quantity
	i.unitPrice = unitPrice
	i.price = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return nil
}
