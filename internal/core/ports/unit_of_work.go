package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// run inside the transaction started by Begin, or directly against the
// database when no transaction is active.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	CartRepository() CartRepository
	CatalogRepository() CatalogRepository
	UserRepository() UserRepository
	OrderRepository() OrderRepository
	CheckoutRepository() CheckoutRepository
	AssignmentRepository() AssignmentRepository
	TrackingRepository() TrackingRepository
	NotificationRepository() NotificationRepository
	DeviceTokenRepository() DeviceTokenRepository
	ReviewRepository() ReviewRepository
	OutboxRepository() OutboxRepository
}
