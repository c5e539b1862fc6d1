package postgres

import (
	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/adapters/out/postgres/checkoutrepo"
	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/notificationrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/reviewrepo"

	"gorm.io/gorm"
)

// Tables lists every table Migrate creates, in an order that is safe for a
// single TRUNCATE statement.
var Tables = []string{
	"outbox_messages",
	"device_tokens",
	"notifications",
	"reviews",
	"order_tracking",
	"delivery_assignments",
	"checkouts",
	"order_status_history",
	"order_items",
	"orders",
	"cart_items",
	"carts",
	"products",
	"users",
}

// indexes holds the constraints AutoMigrate cannot express from struct tags.
var indexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_notifications_review_available
		ON notifications (order_id, type) WHERE type = 'review_available'`,
}

// Migrate creates or updates the schema of all repositories.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&catalogrepo.UserDTO{},
		&catalogrepo.ProductDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusHistoryDTO{},
		&checkoutrepo.CheckoutDTO{},
		&deliveryrepo.AssignmentDTO{},
		&deliveryrepo.TrackingDTO{},
		&reviewrepo.ReviewDTO{},
		&notificationrepo.NotificationDTO{},
		&notificationrepo.DeviceTokenDTO{},
		&outboxrepo.OutboxDTO{},
	)
	if err != nil {
		return err
	}
	for _, ddl := range indexes {
		if err := db.Exec(ddl).Error; err != nil {
			return err
		}
	}
	return nil
}
