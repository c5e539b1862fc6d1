package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Processing, order.Shipped, order.Delivered, order.Canceled} {
		parsed, err := order.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	parsed, err := order.ParseStatus(" SHIPPED ")
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, parsed)

	_, err = order.ParseStatus("lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_TransitionTable(t *testing.T) {
	all := []order.Status{order.Pending, order.Processing, order.Shipped, order.Delivered, order.Canceled}
	allowed := map[order.Status][]order.Status{
		order.Pending:    {order.Processing, order.Canceled},
		order.Processing: {order.Shipped, order.Canceled},
		order.Shipped:    {order.Delivered},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}

			got, err := from.TransitionTo(to)

			if want {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, got)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidStateTransition, "%s -> %s", from, to)
				assert.Equal(t, from, got)
			}
		}
	}
}

func TestStatus_InvalidTransitionMessage(t *testing.T) {
	_, err := order.Delivered.TransitionTo(order.Pending)

	assert.EqualError(t, err, "Invalid status transition: delivered -> pending")
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Processing.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
	assert.Equal(t, "unknown", order.Status(42).String())
}
