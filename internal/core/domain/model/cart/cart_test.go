package cart_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	c := newCart(t)

	require.NoError(t, c.Validate())
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())

	_, err := cart.NewCart(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero *cart.Cart
	assert.ErrorIs(t, zero.Validate(), cart.ErrCartIsNotConstructed)
}

func TestCart_AddProduct(t *testing.T) {
	t.Run("new_line", func(t *testing.T) {
		c := newCart(t)
		product := kernel.NewUUID()

		item, err := c.AddProduct(product, decimal.RequireFromString("5.99"), 3, now)

		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, decimal.RequireFromString("17.97").Equal(item.Price()))
		assert.True(t, decimal.RequireFromString("17.97").Equal(c.Total()))
	})

	t.Run("same_product_merges_into_one_line", func(t *testing.T) {
		c := newCart(t)
		product := kernel.NewUUID()
		_, err := c.AddProduct(product, decimal.RequireFromString("2.50"), 1, now)
		require.NoError(t, err)

		item, err := c.AddProduct(product, decimal.RequireFromString("2.50"), 2, now)

		require.NoError(t, err)
		require.Len(t, c.Items(), 1)
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, decimal.RequireFromString("7.50").Equal(c.Total()))
	})

	t.Run("merge_reprices_with_current_price", func(t *testing.T) {
		c := newCart(t)
		product := kernel.NewUUID()
		_, err := c.AddProduct(product, decimal.RequireFromString("2.00"), 1, now)
		require.NoError(t, err)

		_, err = c.AddProduct(product, decimal.RequireFromString("3.00"), 1, now)

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("6.00").Equal(c.Total()))
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		c := newCart(t)

		_, err := c.AddProduct(kernel.NewUUID(), decimal.NewFromInt(1), 0, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, c.IsEmpty())
	})
}

func TestCart_SetItemQuantity(t *testing.T) {
	t.Run("updates_price_and_total", func(t *testing.T) {
		c := newCart(t)
		a, _ := c.AddProduct(kernel.NewUUID(), decimal.RequireFromString("1.10"), 1, now)
		_, _ = c.AddProduct(kernel.NewUUID(), decimal.RequireFromString("2.00"), 1, now)

		err := c.SetItemQuantity(a.ID(), 4, decimal.RequireFromString("1.10"), now)

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("6.40").Equal(c.Total()))
	})

	t.Run("zero_removes_line", func(t *testing.T) {
		c := newCart(t)
		a, _ := c.AddProduct(kernel.NewUUID(), decimal.RequireFromString("1.10"), 1, now)

		err := c.SetItemQuantity(a.ID(), 0, decimal.Zero, now)

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.True(t, c.Total().IsZero())
	})

	t.Run("unknown_item", func(t *testing.T) {
		c := newCart(t)

		err := c.SetItemQuantity(kernel.NewUUID(), 2, decimal.NewFromInt(1), now)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCart_RemoveAndClear(t *testing.T) {
	c := newCart(t)
	a, _ := c.AddProduct(kernel.NewUUID(), decimal.RequireFromString("1"), 1, now)
	_, _ = c.AddProduct(kernel.NewUUID(), decimal.RequireFromString("2"), 1, now)

	require.NoError(t, c.RemoveItem(a.ID(), now))
	assert.True(t, decimal.RequireFromString("2").Equal(c.Total()))
	require.ErrorIs(t, c.RemoveItem(a.ID(), now), errs.ErrObjectNotFound)

	c.Clear(now)
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
}

func TestRestoreCart_RecomputesTotal(t *testing.T) {
	items := []*cart.Item{
		cart.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 2, decimal.RequireFromString("1.5"), decimal.RequireFromString("3")),
		cart.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), 1, decimal.RequireFromString("0.25"), decimal.RequireFromString("0.25")),
	}

	c := cart.RestoreCart(kernel.NewUUID(), kernel.NewUUID(), items, now)

	assert.True(t, decimal.RequireFromString("3.25").Equal(c.Total()))
}
