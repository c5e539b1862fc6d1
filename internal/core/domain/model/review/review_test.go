package review_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 5, "  great  ", time.Now())

		require.NoError(t, err)
		assert.Equal(t, 5, r.Rating())
		assert.Equal(t, "great", r.Comment())
	})

	t.Run("rating_bounds", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), rating, "", time.Now())
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, rating)
		}
	})
}
