package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartCommandHandler_AddItem_CreatesCartOnFirstUse(t *testing.T) {
	ctx := t.Context()
	user := kernel.NewUUID()
	product := catalog.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(), "Tomatoes", decimal.RequireFromString("5.99"), 10)
	created := cart.RestoreCart(kernel.NewUUID(), user, nil, time.Now().UTC().Add(-time.Hour))

	cmd, err := commands.NewAddCartItemCommand(user, product.ID(), 3)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx)
	mock.InOrder(
		uow.carts.On("GetByUserForUpdate", ctx, user).Return(nil, errs.NewObjectNotFoundError("cart", user)).Once(),
		uow.users.On("Exists", ctx, user).Return(true, nil).Once(),
		uow.carts.On("Add", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.carts.On("GetByUserForUpdate", ctx, user).Return(created, nil).Once(),
		uow.catalog.On("Get", ctx, product.ID()).Return(product, nil).Once(),
		uow.carts.On("Save", ctx, created).Return(nil).Once(),
	)

	h := commands.NewCartCommandHandler(cartFactory(uow))
	c, err := h.HandleAddItem(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 3, c.Items()[0].Quantity())
	assert.Equal(t, "17.97", c.Total().String())
	uow.assertAll(t)
}

func TestCartCommandHandler_AddItem_MergesWithExistingLine(t *testing.T) {
	ctx := t.Context()
	user := kernel.NewUUID()
	product := catalog.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(), "Honey", decimal.RequireFromString("12.50"), 4)
	line := cart.RestoreItem(kernel.NewUUID(), product.ID(), 1, decimal.RequireFromString("10"), decimal.RequireFromString("10"))
	existing := cart.RestoreCart(kernel.NewUUID(), user, []*cart.Item{line}, time.Now().UTC().Add(-time.Hour))

	cmd, err := commands.NewAddCartItemCommand(user, product.ID(), 2)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx)
	uow.carts.On("GetByUserForUpdate", ctx, user).Return(existing, nil).Once()
	uow.catalog.On("Get", ctx, product.ID()).Return(product, nil).Once()
	uow.carts.On("Save", ctx, existing).Return(nil).Once()

	h := commands.NewCartCommandHandler(cartFactory(uow))
	c, err := h.HandleAddItem(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 3, c.Items()[0].Quantity())
	assert.Equal(t, "37.5", c.Total().String())
	uow.assertAll(t)
}

func TestCartCommandHandler_UnknownUser(t *testing.T) {
	ctx := t.Context()
	user := kernel.NewUUID()
	cmd, err := commands.NewGetOrCreateCartCommand(user)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectAbortedTx(ctx)
	uow.carts.On("GetByUserForUpdate", ctx, user).Return(nil, errs.NewObjectNotFoundError("cart", user)).Once()
	uow.users.On("Exists", ctx, user).Return(false, nil).Once()

	h := commands.NewCartCommandHandler(cartFactory(uow))
	_, err = h.HandleGetOrCreate(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.assertAll(t)
}

func TestCartCommandHandler_GetOrCreate_DoesNotSaveUnchangedCart(t *testing.T) {
	ctx := t.Context()
	user := kernel.NewUUID()
	existing := cart.RestoreCart(kernel.NewUUID(), user, nil, time.Now().UTC())
	cmd, err := commands.NewGetOrCreateCartCommand(user)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx)
	uow.carts.On("GetByUserForUpdate", ctx, user).Return(existing, nil).Once()

	h := commands.NewCartCommandHandler(cartFactory(uow))
	c, err := h.HandleGetOrCreate(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	uow.carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	uow.assertAll(t)
}

func TestCartCommandHandler_SetQuantityZeroRemovesLine(t *testing.T) {
	ctx := t.Context()
	user := kernel.NewUUID()
	line := cart.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 2, decimal.RequireFromString("3"), decimal.RequireFromString("6"))
	existing := cart.RestoreCart(kernel.NewUUID(), user, []*cart.Item{line}, time.Now().UTC().Add(-time.Minute))

	cmd, err := commands.NewSetCartItemQuantityCommand(user, line.ID(), 0)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx)
	uow.carts.On("GetByUserForUpdate", ctx, user).Return(existing, nil).Once()
	uow.carts.On("Save", ctx, existing).Return(nil).Once()

	h := commands.NewCartCommandHandler(cartFactory(uow))
	c, err := h.HandleSetItemQuantity(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
	uow.catalog.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.assertAll(t)
}

func TestCartCommandHandler_SetQuantityOfUnknownItem(t *testing.T) {
	ctx := t.Context()
	user := kernel.NewUUID()
	existing := cart.RestoreCart(kernel.NewUUID(), user, nil, time.Now().UTC())
	cmd, err := commands.NewSetCartItemQuantityCommand(user, kernel.NewUUID(), 4)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectAbortedTx(ctx)
	uow.carts.On("GetByUserForUpdate", ctx, user).Return(existing, nil).Once()

	h := commands.NewCartCommandHandler(cartFactory(uow))
	_, err = h.HandleSetItemQuantity(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.assertAll(t)
}

func TestNewAddCartItemCommand_QuantityMustBePositive(t *testing.T) {
	_, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), 0)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
