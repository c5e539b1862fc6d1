// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination of repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CheckoutRepoFactory interface {
		CheckoutRepository() ports.CheckoutRepository
	}

	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	DeviceTokenRepoFactory interface {
		DeviceTokenRepository() ports.DeviceTokenRepository
	}

	// CartUoW covers cart mutations: the cart itself, live catalog prices and
	// the user lookup needed for lazy cart creation.
	CartUoW interface {
		TxManager
		CartRepoFactory
		CatalogRepoFactory
		UserRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// OrderRepos is everything order creation touches. It is satisfied both by
	// OrderUoW and by CheckoutUoW, so that an order can be created inside the
	// checkout transaction.
	OrderRepos interface {
		OrderRepoFactory
		CatalogRepoFactory
		UserRepoFactory
	}

	OrderUoW interface {
		TxManager
		OrderRepos
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages checkout initiation and delivery updates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   c, err := uow.CartRepository().GetByUserForUpdate(ctx, userID)
	//   o, err := creator.CreateWithin(ctx, uow, orderCmd)
	//   err = uow.CheckoutRepository().Add(ctx, checkout)
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		OrderRepos
		CartRepoFactory
		CheckoutRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// StatusUoW manages order status transitions, delivery assignments and
	// the outbox entry of order.delivered.
	StatusUoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
		OutboxRepoFactory
	}

	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// TrackingUoW checks the delivery assignment and appends agent positions.
	TrackingUoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
		TrackingRepoFactory
	}

	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		CheckoutRepoFactory
		CartRepoFactory
		CatalogRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	ReviewUoW interface {
		TxManager
		OrderRepoFactory
		ReviewRepoFactory
	}

	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	DeviceTokenUoW interface {
		TxManager
		DeviceTokenRepoFactory
	}

	DeviceTokenUoWFactory interface {
		Create() DeviceTokenUoW
	}
)

// Collaborators wired once in the composition root.
type (
	// OrderCreator creates an order inside a transaction owned by the caller.
	OrderCreator interface {
		CreateWithin(ctx context.Context, repos OrderRepos, cmd CreateOrderCommand) (*order.Order, error)
	}

	// CartReader is the part of the cart store that checkout reads from.
	CartReader interface {
		GetByUserForUpdate(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)
	}

	// EffectDispatcher runs the side effects of committed order changes.
	// Implementations never fail the caller: errors are logged.
	EffectDispatcher interface {
		Dispatch(ctx context.Context, o *order.Order, t order.Transition, effects []services.Effect)
		ReadyForPickup(ctx context.Context, o *order.Order, producerID kernel.UUID, message string)
	}
)
