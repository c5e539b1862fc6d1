package order

import (
	"encoding/json"
	"time"
)

// DeliveredEventType names the event emitted once per order reaching Delivered.
const DeliveredEventType = "order.delivered"

// DeliveredEvent is the payload of DeliveredEventType. Consumers must be
// idempotent on OrderID: delivery is at-least-once.
type DeliveredEvent struct {
	EventID     string               `json:"eventId"`
	OrderID     string               `json:"orderId"`
	UserID      string               `json:"userId"`
	DeliveredAt time.Time            `json:"deliveredAt"`
	Items       []DeliveredEventItem `json:"items"`
}

type DeliveredEventItem struct {
	OrderItemID string `json:"orderItemId"`
	ProductID   string `json:"productId"`
	ProducerID  string `json:"producerId"`
}

// NewDeliveredEvent builds the event for an order that has just been delivered.
func NewDeliveredEvent(eventID string, o *Order, at time.Time) DeliveredEvent {
	items := make([]DeliveredEventItem, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, DeliveredEventItem{
			OrderItemID: item.id.String(),
			ProductID:   item.productID.String(),
			ProducerID:  item.producerID.String(),
		})
	}
	return DeliveredEvent{
		EventID:     eventID,
		OrderID:     o.id.String(),
		UserID:      o.userID.String(),
		DeliveredAt: at,
		Items:       items,
	}
}

func (e DeliveredEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func UnmarshalDeliveredEvent(payload []byte) (DeliveredEvent, error) {
	var e DeliveredEvent
	err := json.Unmarshal(payload, &e)
	return e, err
}
