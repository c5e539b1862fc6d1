package delivery

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// TrackingPoint is one position reported by the agent carrying an order,
// stamped with the order status at the time of the report.
type TrackingPoint struct {
	id         kernel.UUID
	orderID    kernel.UUID
	agentID    kernel.UUID
	location   kernel.Location
	status     order.Status
	recordedAt time.Time
}

// NewTrackingPoint records a position for an order that is out for delivery.
func NewTrackingPoint(
	id kernel.UUID,
	assignment *Assignment,
	location kernel.Location,
	status order.Status,
	recordedAt time.Time,
) (*TrackingPoint, error) {
	if assignment == nil {
		return nil, errs.NewValueIsRequiredError("delivery assignment")
	}
	if err := errors.Join(id.Validate(), location.Validate()); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("tracking point", err)
	}
	if status != order.Shipped {
		return nil, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("order %s is %s, tracking is only recorded while shipped", assignment.OrderID(), status))
	}
	return &TrackingPoint{
		id:         id,
		orderID:    assignment.OrderID(),
		agentID:    assignment.AgentID(),
		location:   location,
		status:     status,
		recordedAt: recordedAt,
	}, nil
}

func RestoreTrackingPoint(
	id, orderID, agentID kernel.UUID,
	location kernel.Location,
	status order.Status,
	recordedAt time.Time,
) *TrackingPoint {
	return &TrackingPoint{
		id:         id,
		orderID:    orderID,
		agentID:    agentID,
		location:   location,
		status:     status,
		recordedAt: recordedAt,
	}
}

func (p *TrackingPoint) ID() kernel.UUID           { return p.id }
func (p *TrackingPoint) OrderID() kernel.UUID      { return p.orderID }
func (p *TrackingPoint) AgentID() kernel.UUID      { return p.agentID }
func (p *TrackingPoint) Location() kernel.Location { return p.location }
func (p *TrackingPoint) Status() order.Status      { return p.status }
func (p *TrackingPoint) RecordedAt() time.Time     { return p.recordedAt }
