package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitiateCheckoutCommandHandler_CreatesOrderAndCheckoutTogether(t *testing.T) {
	ctx := t.Context()
	user := kernel.NewUUID()
	product := catalog.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(), "Tomatoes", decimal.RequireFromString("5.99"), 10)
	line := cart.RestoreItem(kernel.NewUUID(), product.ID(), 3, product.Price(), decimal.RequireFromString("17.97"))
	c := cart.RestoreCart(kernel.NewUUID(), user, []*cart.Item{line}, time.Now().UTC())

	cmd, err := commands.NewInitiateCheckoutCommand(user, c.ID())
	require.NoError(t, err)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.carts.On("GetByUserForUpdate", ctx, user).Return(c, nil).Once(),
		uow.users.On("Exists", ctx, user).Return(true, nil).Once(),
		uow.catalog.On("FindByIDs", ctx, []kernel.UUID{product.ID()}).Return([]*catalog.Product{product}, nil).Once(),
		uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.checkouts.On("Add", ctx, mock.AnythingOfType("*checkout.Checkout")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	creator := commands.NewCreateOrderCommandHandler(orderFactory(uow))
	h := commands.NewInitiateCheckoutCommandHandler(checkoutFactory(uow), &creator)
	session, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, checkout.Initiated, session.Status())
	assert.True(t, session.CartID().IsEqual(c.ID()))
	assert.Equal(t, "17.97", session.Pricing().Subtotal.String())
	assert.Equal(t, "17.97", session.Pricing().Total.String())

	placed := uow.orders.Calls[0].Arguments.Get(1).(*order.Order)
	assert.True(t, placed.ID().IsEqual(session.OrderID()))
	assert.Equal(t, order.Pending, placed.Status())
	uow.assertAll(t)
}

func TestInitiateCheckoutCommandHandler_SubtotalFollowsCatalogPrice(t *testing.T) {
	ctx := t.Context()
	user := kernel.NewUUID()
	product := catalog.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(), "Tomatoes", decimal.RequireFromString("6.49"), 10)
	stale := cart.RestoreItem(kernel.NewUUID(), product.ID(), 3, decimal.RequireFromString("5.99"), decimal.RequireFromString("17.97"))
	c := cart.RestoreCart(kernel.NewUUID(), user, []*cart.Item{stale}, time.Now().UTC())

	cmd, err := commands.NewInitiateCheckoutCommand(user, c.ID())
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx)
	uow.carts.On("GetByUserForUpdate", ctx, user).Return(c, nil).Once()
	uow.users.On("Exists", ctx, user).Return(true, nil).Once()
	uow.catalog.On("FindByIDs", ctx, []kernel.UUID{product.ID()}).Return([]*catalog.Product{product}, nil).Once()
	uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.checkouts.On("Add", ctx, mock.AnythingOfType("*checkout.Checkout")).Return(nil).Once()

	creator := commands.NewCreateOrderCommandHandler(orderFactory(uow))
	h := commands.NewInitiateCheckoutCommandHandler(checkoutFactory(uow), &creator)
	session, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	placed := uow.orders.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, "19.47", placed.TotalPrice().String())
	assert.True(t, session.Pricing().Subtotal.Equal(placed.TotalPrice()))
	assert.True(t, session.Pricing().Total.Equal(placed.TotalPrice()))
	uow.assertAll(t)
}

func TestInitiateCheckoutCommandHandler_Rejections(t *testing.T) {
	user := kernel.NewUUID()

	t.Run("empty cart", func(t *testing.T) {
		ctx := t.Context()
		c := cart.RestoreCart(kernel.NewUUID(), user, nil, time.Now().UTC())
		cmd, err := commands.NewInitiateCheckoutCommand(user, c.ID())
		require.NoError(t, err)

		uow := newMockUoW()
		uow.expectAbortedTx(ctx)
		uow.carts.On("GetByUserForUpdate", ctx, user).Return(c, nil).Once()

		creator := commands.NewCreateOrderCommandHandler(orderFactory(uow))
		h := commands.NewInitiateCheckoutCommandHandler(checkoutFactory(uow), &creator)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		uow.assertAll(t)
	})

	t.Run("cart of someone else", func(t *testing.T) {
		ctx := t.Context()
		c := cart.RestoreCart(kernel.NewUUID(), user, nil, time.Now().UTC())
		cmd, err := commands.NewInitiateCheckoutCommand(user, kernel.NewUUID())
		require.NoError(t, err)

		uow := newMockUoW()
		uow.expectAbortedTx(ctx)
		uow.carts.On("GetByUserForUpdate", ctx, user).Return(c, nil).Once()

		creator := commands.NewCreateOrderCommandHandler(orderFactory(uow))
		h := commands.NewInitiateCheckoutCommandHandler(checkoutFactory(uow), &creator)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.assertAll(t)
	})
}

func TestUpdateCheckoutDeliveryCommandHandler_AppliesCouponAndFee(t *testing.T) {
	ctx := t.Context()
	user := kernel.NewUUID()
	o := storedOrder(t, order.Pending, user, kernel.NewUUID())
	session, err := checkout.NewCheckout(kernel.NewUUID(), user, kernel.NewUUID(), o.ID(),
		checkout.SubtotalOnly(decimal.RequireFromString("17.97")), time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewUpdateCheckoutDeliveryCommand(user, o.ID(), kernel.UUID{}, "pickup", "desconto10")
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx)
	uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.checkouts.On("GetByOrder", ctx, o.ID()).Return(session, nil).Once()
	uow.checkouts.On("Update", ctx, session).Return(nil).Once()

	h := commands.NewUpdateCheckoutDeliveryCommandHandler(checkoutFactory(uow), services.NewDefaultPriceCalculator())
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "1.797", updated.Pricing().Discount.String())
	assert.True(t, updated.Pricing().DeliveryFee.IsZero())
	assert.Equal(t, "16.173", updated.Pricing().Total.String())
	assert.Equal(t, "DESCONTO10", updated.CouponCode())
	uow.assertAll(t)
}

func TestUpdateCheckoutDeliveryCommandHandler_OrderNoLongerPending(t *testing.T) {
	ctx := t.Context()
	user := kernel.NewUUID()
	o := storedOrder(t, order.Processing, user, kernel.NewUUID())
	session, err := checkout.NewCheckout(kernel.NewUUID(), user, kernel.NewUUID(), o.ID(),
		checkout.SubtotalOnly(decimal.RequireFromString("10")), time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewUpdateCheckoutDeliveryCommand(user, o.ID(), kernel.UUID{}, "pickup", "")
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectAbortedTx(ctx)
	uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.checkouts.On("GetByOrder", ctx, o.ID()).Return(session, nil).Once()

	h := commands.NewUpdateCheckoutDeliveryCommandHandler(checkoutFactory(uow), services.NewDefaultPriceCalculator())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.assertAll(t)
}

func TestUpdateCheckoutDeliveryCommandHandler_ConfirmedCheckoutIsNotRepriced(t *testing.T) {
	ctx := t.Context()
	user := kernel.NewUUID()
	o := storedOrder(t, order.Pending, user, kernel.NewUUID())
	session, err := checkout.NewCheckout(kernel.NewUUID(), user, kernel.NewUUID(), o.ID(),
		checkout.SubtotalOnly(decimal.RequireFromString("11.98")), time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, session.Confirm(time.Now().UTC()))

	cmd, err := commands.NewUpdateCheckoutDeliveryCommand(user, o.ID(), kernel.UUID{}, "pickup", "desconto10")
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectAbortedTx(ctx)
	uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.checkouts.On("GetByOrder", ctx, o.ID()).Return(session, nil).Once()

	h := commands.NewUpdateCheckoutDeliveryCommandHandler(checkoutFactory(uow), services.NewDefaultPriceCalculator())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, checkout.ErrCheckoutConfirmed)
	assert.Equal(t, "11.98", session.Pricing().Total.String())
	uow.checkouts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.assertAll(t)
}
