package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// CartCommandHandler handles every cart mutation. Each call runs in its own
// transaction with the cart row locked, so concurrent requests of the same
// user are applied one after the other and the total is always derived from
// the persisted item set.
type CartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewCartCommandHandler(uowFactory CartUoWFactory) CartCommandHandler {
	return CartCommandHandler{uowFactory: uowFactory}
}

func (h *CartCommandHandler) HandleGetOrCreate(ctx context.Context, cmd GetOrCreateCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.mutate(ctx, cmd.UserID(), func(_ CartUoW, _ *cart.Cart, _ time.Time) error {
		return nil
	})
}

func (h *CartCommandHandler) HandleAddItem(ctx context.Context, cmd AddCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.mutate(ctx, cmd.UserID(), func(uow CartUoW, c *cart.Cart, now time.Time) error {
		product, err := uow.CatalogRepository().Get(ctx, cmd.ProductID())
		if err != nil {
			return err
		}
		_, err = c.AddProduct(product.ID(), product.Price(), cmd.Quantity(), now)
		return err
	})
}

func (h *CartCommandHandler) HandleSetItemQuantity(ctx context.Context, cmd SetCartItemQuantityCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.mutate(ctx, cmd.UserID(), func(uow CartUoW, c *cart.Cart, now time.Time) error {
		item, ok := c.Item(cmd.ItemID())
		if !ok {
			return errs.NewObjectNotFoundError("cart item", cmd.ItemID().String())
		}
		if cmd.Quantity() <= 0 {
			return c.RemoveItem(item.ID(), now)
		}
		product, err := uow.CatalogRepository().Get(ctx, item.ProductID())
		if err != nil {
			return err
		}
		return c.SetItemQuantity(item.ID(), cmd.Quantity(), product.Price(), now)
	})
}

func (h *CartCommandHandler) HandleRemoveItem(ctx context.Context, cmd RemoveCartItemCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.mutate(ctx, cmd.UserID(), func(_ CartUoW, c *cart.Cart, now time.Time) error {
		return c.RemoveItem(cmd.ItemID(), now)
	})
}

func (h *CartCommandHandler) HandleClear(ctx context.Context, cmd ClearCartCommand) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.mutate(ctx, cmd.UserID(), func(_ CartUoW, c *cart.Cart, now time.Time) error {
		c.Clear(now)
		return nil
	})
}

func (h *CartCommandHandler) mutate(
	ctx context.Context,
	userID kernel.UUID,
	apply func(uow CartUoW, c *cart.Cart, now time.Time) error,
) (*cart.Cart, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := lockOrCreateCart(ctx, uow, userID)
	if err != nil {
		return nil, err
	}

	before := c.UpdatedAt()
	if err = apply(uow, c, time.Now().UTC()); err != nil {
		return nil, err
	}
	if !c.UpdatedAt().Equal(before) {
		if err = uow.CartRepository().Save(ctx, c); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// lockOrCreateCart loads the user's cart with a row lock, creating it first
// when the user has none.
func lockOrCreateCart(ctx context.Context, uow CartUoW, userID kernel.UUID) (*cart.Cart, error) {
	repo := uow.CartRepository()

	c, err := repo.GetByUserForUpdate(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	exists, err := uow.UserRepository().Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("user", userID.String())
	}

	fresh, err := cart.NewCart(kernel.NewUUID(), userID)
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, fresh); err != nil {
		return nil, err
	}

	return repo.GetByUserForUpdate(ctx, userID)
}
