// Package order contains the Order aggregate: its items, its status state
// machine, its append-only status history and the order.delivered event.
//
// Status changes are decided here (ChangeStatus, MarkReadyForPickup) and
// persisted by the order repository together with the new history entries.
package order
