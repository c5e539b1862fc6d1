package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order would be created without lines.
	ErrOrderHasNoItems = errs.NewValueIsRequiredErrorWithCause("items", errors.New("order must contain at least one item"))

	// ErrOrderAlreadyPaid is returned when a payment is settled twice for one order.
	ErrOrderAlreadyPaid = errs.NewValueIsInvalidErrorWithCause("order", errors.New("order is already paid"))
)

// Order is the aggregate root of a purchase. It owns its items and its status
// history and is the only place where status changes are decided.
//
// Invariants:
//   - at least one item
//   - totalPrice equals the sum of item totals at creation time
//   - status only changes along the edges described on Status
//   - every status change appends exactly one HistoryEntry
type Order struct {
	id              kernel.UUID
	userID          kernel.UUID
	items           []*Item
	status          Status
	totalPrice      decimal.Decimal
	shippingAddress string
	paymentMethod   string
	trackingCode    string
	readyForPickup  bool
	readyNotifiedAt *time.Time
	paidAt          *time.Time
	createdAt       time.Time
	updatedAt       time.Time

	// newHistory holds entries appended since the order was loaded; the
	// repository persists them together with the status change.
	newHistory []*HistoryEntry

	isConstructed bool
}

// NewOrder creates a pending order for userID. Items keep the order they were given in.
func NewOrder(
	id, userID kernel.UUID,
	items []*Item,
	shippingAddress, paymentMethod string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:          Pending,
		shippingAddress: strings.TrimSpace(shippingAddress),
		paymentMethod:   strings.TrimSpace(paymentMethod),
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the persisted state of an order, used by RestoreOrder.
type Snapshot struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	Status          Status
	TotalPrice      decimal.Decimal
	ShippingAddress string
	PaymentMethod   string
	TrackingCode    string
	ReadyForPickup  bool
	ReadyNotifiedAt *time.Time
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreOrder rebuilds an order read from storage. Totals are trusted as stored.
func RestoreOrder(s Snapshot, items []*Item) (*Order, error) {
	if err := s.Status.Validate(); err != nil {
		return nil, err
	}
	return &Order{
		id:              s.ID,
		userID:          s.UserID,
		items:           items,
		status:          s.Status,
		totalPrice:      s.TotalPrice,
		shippingAddress: s.ShippingAddress,
		paymentMethod:   s.PaymentMethod,
		trackingCode:    s.TrackingCode,
		readyForPickup:  s.ReadyForPickup,
		readyNotifiedAt: s.ReadyNotifiedAt,
		paidAt:          s.PaidAt,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		isConstructed:   true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID is the consumer who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the order lines in purchase order.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

func (o *Order) TrackingCode() string {
	return o.trackingCode
}

func (o *Order) ReadyForPickup() bool {
	return o.readyForPickup
}

func (o *Order) ReadyNotifiedAt() *time.Time {
	return o.readyNotifiedAt
}

// PaidAt is when an approved payment was settled, nil while unpaid.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

func (o *Order) IsPaid() bool {
	return o.paidAt != nil
}

// MarkPaid records the settlement of an approved payment. Only pending
// orders are paid, and only once.
func (o *Order) MarkPaid(now time.Time) error {
	if o.paidAt != nil {
		return ErrOrderAlreadyPaid
	}
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("order %s is %s and cannot be paid", o.id, o.status))
	}
	paidAt := now
	o.paidAt = &paidAt
	o.updatedAt = now
	return nil
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// NewHistoryEntries returns the history appended since the order was created or restored.
func (o *Order) NewHistoryEntries() []*HistoryEntry {
	entries := make([]*HistoryEntry, len(o.newHistory))
	copy(entries, o.newHistory)
	return entries
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// ItemsOf returns the lines sold by producerID. Producers must only ever be
// shown this subset.
func (o *Order) ItemsOf(producerID kernel.UUID) []*Item {
	var items []*Item
	for _, item := range o.items {
		if item.producerID.IsEqual(producerID) {
			items = append(items, item)
		}
	}
	return items
}

func (o *Order) HasItemsFrom(producerID kernel.UUID) bool {
	return len(o.ItemsOf(producerID)) > 0
}

// Item finds a line by id.
func (o *Order) Item(itemID kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.id.IsEqual(itemID) {
			return item, true
		}
	}
	return nil, false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	total := decimal.Zero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.totalPrice)
	}
	o.items = append([]*Item(nil), items...)
	o.totalPrice = total
	return nil
}
