package services

import "marketplace/internal/core/domain/model/order"

// Effect is a side effect owed to the outside world after a committed status change.
type Effect int

const (
	// NotifyShipped creates an order_shipped notification for the buyer and pushes it.
	NotifyShipped Effect = iota + 1
	// NotifyDelivered removes the order_shipped notification, then creates and
	// pushes an order_delivered one.
	NotifyDelivered
	// PublishDelivered emits order.delivered through the outbox.
	PublishDelivered
)

func (e Effect) String() string {
	switch e {
	case NotifyShipped:
		return "notify_shipped"
	case NotifyDelivered:
		return "notify_delivered"
	case PublishDelivered:
		return "publish_delivered"
	default:
		return "unknown"
	}
}

// PlanEffects lists the effects of a transition, in the order they must run.
//
//   - * -> shipped (from a non-shipped status): NotifyShipped
//   - * -> delivered: NotifyDelivered, PublishDelivered
//
// Every other transition has no effect.
func PlanEffects(t order.Transition) []Effect {
	switch {
	case t.To == order.Shipped && t.From != order.Shipped:
		return []Effect{NotifyShipped}
	case t.To == order.Delivered:
		return []Effect{NotifyDelivered, PublishDelivered}
	default:
		return nil
	}
}

// Has reports whether effect is part of effects.
func Has(effects []Effect, effect Effect) bool {
	for _, e := range effects {
		if e == effect {
			return true
		}
	}
	return false
}
