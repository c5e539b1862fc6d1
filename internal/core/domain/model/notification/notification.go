// Package notification models the user-facing notification records produced
// by order lifecycle events.
package notification

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Type classifies a notification. At most one notification of a given
// lifecycle type exists per (order, type).
type Type string

const (
	OrderShipped    Type = "order_shipped"
	OrderDelivered  Type = "order_delivered"
	OrderReady      Type = "order_ready"
	ReviewAvailable Type = "review_available"
)

type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	orderID   kernel.UUID
	kind      Type
	title     string
	body      string
	data      map[string]string
	createdAt time.Time
}

func NewNotification(
	userID, orderID kernel.UUID,
	kind Type,
	title, body string,
	data map[string]string,
	now time.Time,
) (*Notification, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate()); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("notification", err)
	}
	if strings.TrimSpace(title) == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if data == nil {
		data = map[string]string{}
	}
	data["orderId"] = orderID.String()
	data["type"] = string(kind)
	return &Notification{
		id:        kernel.NewUUID(),
		userID:    userID,
		orderID:   orderID,
		kind:      kind,
		title:     title,
		body:      body,
		data:      data,
		createdAt: now,
	}, nil
}

func RestoreNotification(
	id, userID, orderID kernel.UUID,
	kind Type,
	title, body string,
	data map[string]string,
	createdAt time.Time,
) *Notification {
	return &Notification{id: id, userID: userID, orderID: orderID, kind: kind, title: title, body: body, data: data, createdAt: createdAt}
}

func (n *Notification) ID() kernel.UUID { return n.id }
func (n *Notification) UserID() kernel.UUID { return n.userID }
func (n *Notification) OrderID() kernel.UUID { return n.orderID }
func (n *Notification) Type() Type { return n.kind }
func (n *Notification) Title() string { return n.title }
func (n *Notification) Body() string { return n.body }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// Data returns a copy of the push payload.
func (n *Notification) Data() map[string]string {
	data := make(map[string]string, len(n.data))
	for k, v := range n.data {
		data[k] = v
	}
	return data
}
