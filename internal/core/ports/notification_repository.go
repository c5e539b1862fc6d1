package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/review"
)

type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error

	// DeleteByOrderAndType removes the notifications of one type for an order
	// and reports how many were removed.
	DeleteByOrderAndType(ctx context.Context, orderID kernel.UUID, kind notification.Type) (int64, error)

	ExistsByOrderAndType(ctx context.Context, orderID kernel.UUID, kind notification.Type) (bool, error)

	// LockOrder serializes notification writes of one order until the
	// surrounding transaction ends.
	LockOrder(ctx context.Context, orderID kernel.UUID) error
}

// DeviceTokenRepository stores push tokens of user devices.
type DeviceTokenRepository interface {
	// Register upserts token for userID and marks it active.
	Register(ctx context.Context, userID kernel.UUID, token, platform string) error
	ActiveTokens(ctx context.Context, userID kernel.UUID) ([]string, error)
	Deactivate(ctx context.Context, tokens []string) error

	// PurgeInactive deletes tokens deactivated before the given time.
	PurgeInactive(ctx context.Context, before time.Time) (int64, error)
}

type ReviewRepository interface {
	// Add fails with a ConflictError when the user already reviewed the item.
	Add(ctx context.Context, r *review.Review) error
	ExistsForOrderItem(ctx context.Context, userID, orderItemID kernel.UUID) (bool, error)
}
