package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("cart command not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_supplied_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type coupon struct {
		code  string
		guard guard.ConstructorGuard
	}
	errCouponNotConstructed := errors.New("coupon must be created via newCoupon")
	newCoupon := func(code string) coupon {
		return coupon{code: code, guard: guard.NewConstructorGuard()}
	}

	assert.NoError(t, newCoupon("DESCONTO10").guard.Validate(errCouponNotConstructed))
	assert.ErrorIs(t, coupon{code: "DESCONTO10"}.guard.Validate(errCouponNotConstructed), errCouponNotConstructed)
}
