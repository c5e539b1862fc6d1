package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// HistoryEntry records one status event of an order. Entries are append-only.
// A ready-for-pickup notice is recorded with Status == PreviousStatus.
type HistoryEntry struct {
	id             kernel.UUID
	orderID        kernel.UUID
	status         Status
	previousStatus Status
	notes          string
	actorID        kernel.UUID
	createdAt      time.Time
}

func RestoreHistoryEntry(
	id, orderID kernel.UUID,
	status, previousStatus Status,
	notes string,
	actorID kernel.UUID,
	createdAt time.Time,
) *HistoryEntry {
	return &HistoryEntry{
		id:             id,
		orderID:        orderID,
		status:         status,
		previousStatus: previousStatus,
		notes:          notes,
		actorID:        actorID,
		createdAt:      createdAt,
	}
}

func (h *HistoryEntry) ID() kernel.UUID { return h.id }
func (h *HistoryEntry) OrderID() kernel.UUID { return h.orderID }
func (h *HistoryEntry) Status() Status { return h.status }
func (h *HistoryEntry) PreviousStatus() Status { return h.previousStatus }
func (h *HistoryEntry) Notes() string { return h.notes }
func (h *HistoryEntry) ActorID() kernel.UUID { return h.actorID }
func (h *HistoryEntry) CreatedAt() time.Time { return h.createdAt }
