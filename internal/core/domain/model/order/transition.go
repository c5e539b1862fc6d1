package order

import (
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// DefaultReadyMessage is used when a producer announces a ready order without a message.
const DefaultReadyMessage = "Your order is ready for pickup"

// Transition describes an applied status change.
type Transition struct {
	OrderID kernel.UUID
	From    Status
	To      Status
	Notes   string
	ActorID kernel.UUID
	At      time.Time
}

// Authorize checks whether actor may move this order at all.
//
//   - platform: any transition
//   - producer: only when at least one item is theirs
//   - delivery agent: only shipped and delivered targets; the caller verifies
//     the delivery assignment, which lives outside this aggregate
//   - consumer: never
func (o *Order) Authorize(actor kernel.Actor, to Status) error {
	switch actor.Role() {
	case kernel.RolePlatform:
		return nil
	case kernel.RoleProducer:
		if !o.HasItemsFrom(actor.ID()) {
			return errs.NewForbiddenErrorWithCause("update order status",
				fmt.Errorf("producer %s has no items in order %s", actor.ID(), o.id))
		}
		return nil
	case kernel.RoleDeliveryAgent:
		if to != Shipped && to != Delivered {
			return errs.NewForbiddenErrorWithCause("update order status",
				fmt.Errorf("delivery agents cannot move orders to %s", to))
		}
		return nil
	default:
		return errs.NewForbiddenError("update order status")
	}
}

// ExpectStatus fails with a VersionIsInvalidError when the order no longer
// has the status the caller last observed. Unknown disables the check.
func (o *Order) ExpectStatus(expected Status) error {
	if expected == Unknown || expected == o.status {
		return nil
	}
	return errs.NewVersionIsInvalidError("status",
		fmt.Errorf("order %s is %s, expected %s", o.id, o.status, expected))
}

// ChangeStatus authorizes actor, applies the transition and appends a history entry.
// Shipping an order without a tracking code assigns one.
func (o *Order) ChangeStatus(actor kernel.Actor, to Status, notes string, now time.Time) (Transition, error) {
	if err := o.Authorize(actor, to); err != nil {
		return Transition{}, err
	}

	from := o.status
	next, err := from.TransitionTo(to)
	if err != nil {
		return Transition{}, err
	}

	o.status = next
	o.updatedAt = now
	if next == Shipped && o.trackingCode == "" {
		o.trackingCode = trackingCodeFor(o.id)
	}
	notes = strings.TrimSpace(notes)
	o.appendHistory(next, from, notes, actor.ID(), now)

	return Transition{OrderID: o.id, From: from, To: next, Notes: notes, ActorID: actor.ID(), At: now}, nil
}

// MarkReadyForPickup lets a producer announce that its part of a processing
// or shipped order can be collected. The status is unchanged; the notice is
// kept in the history.
func (o *Order) MarkReadyForPickup(actor kernel.Actor, message string, now time.Time) (string, error) {
	if !actor.Is(kernel.RoleProducer) || !o.HasItemsFrom(actor.ID()) {
		return "", errs.NewForbiddenError("notify order ready")
	}
	if o.status != Processing && o.status != Shipped {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order must be processing or shipped to be ready, it is %s", o.status))
	}

	message = strings.TrimSpace(message)
	if message == "" {
		message = DefaultReadyMessage
	}
	o.readyForPickup = true
	o.readyNotifiedAt = &now
	o.updatedAt = now
	o.appendHistory(o.status, o.status, message, actor.ID(), now)
	return message, nil
}

func (o *Order) appendHistory(status, previous Status, notes string, actorID kernel.UUID, now time.Time) {
	o.newHistory = append(o.newHistory, &HistoryEntry{
		id:             kernel.NewUUID(),
		orderID:        o.id,
		status:         status,
		previousStatus: previous,
		notes:          notes,
		actorID:        actorID,
		createdAt:      now,
	})
}

func trackingCodeFor(id kernel.UUID) string {
	raw := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return "TRK" + raw[:12]
}
