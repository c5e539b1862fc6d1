// Package delivery models which delivery agent carries which order.
package delivery

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Assignment binds an order to the delivery agent that accepted it.
// An order has at most one assignment.
type Assignment struct {
	orderID    kernel.UUID
	agentID    kernel.UUID
	acceptedAt time.Time
}

func NewAssignment(orderID, agentID kernel.UUID, acceptedAt time.Time) (*Assignment, error) {
	if err := errors.Join(orderID.Validate(), agentID.Validate()); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("delivery assignment", err)
	}
	return &Assignment{orderID: orderID, agentID: agentID, acceptedAt: acceptedAt}, nil
}

func RestoreAssignment(orderID, agentID kernel.UUID, acceptedAt time.Time) *Assignment {
	return &Assignment{orderID: orderID, agentID: agentID, acceptedAt: acceptedAt}
}

func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

func (a *Assignment) AgentID() kernel.UUID {
	return a.agentID
}

func (a *Assignment) AcceptedAt() time.Time {
	return a.acceptedAt
}

// IsCarriedBy reports whether agentID holds this assignment.
func (a *Assignment) IsCarriedBy(agentID kernel.UUID) bool {
	return a.agentID.IsEqual(agentID)
}
