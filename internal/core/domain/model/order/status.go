package order

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Processing ──┬──> Shipped ──> Delivered
//	          │                 │
//	          └─────────────────┴──> Canceled
//
// Delivered and Canceled are terminal. Any move not drawn above is rejected
// with an InvalidStateTransitionError, including moving a status onto itself.
type Status int

const (
	// Unknown is the zero value and never a persisted status.
	Unknown Status = iota
	Pending
	Processing
	Shipped
	Delivered
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Canceled:   "canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Canceled:   "canceled",
	}
}

// getTransitions lists, for every non-terminal status, the statuses it may move to.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing edges
	return map[Status][]Status{
		Pending:    {Processing, Canceled},
		Processing: {Shipped, Canceled},
		Shipped:    {Delivered},
	}
}

// ParseStatus converts the persisted / wire representation ("pending", "shipped", ...)
// into a Status. Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// CanTransitionTo reports whether to is a direct successor of s.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range getTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo returns to when the move is allowed, or an
// InvalidStateTransitionError naming both ends.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return s, err
	}
	if !s.CanTransitionTo(to) {
		return s, errs.NewInvalidStateTransitionError(s.String(), to.String())
	}
	return to, nil
}
