package queries_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"user orders", queries.GetUserOrdersQuery{}.Validate, queries.ErrGetUserOrdersQueryIsNotConstructed},
		{"order details", queries.GetOrderDetailsQuery{}.Validate, queries.ErrGetOrderDetailsQueryIsNotConstructed},
		{"producer orders", queries.GetProducerOrdersQuery{}.Validate, queries.ErrGetProducerOrdersQueryIsNotConstructed},
		{"status history", queries.GetOrderStatusHistoryQuery{}.Validate, queries.ErrGetOrderStatusHistoryQueryIsNotConstructed},
		{"order tracking", queries.GetOrderTrackingQuery{}.Validate, queries.ErrGetOrderTrackingQueryIsNotConstructed},
		{"available deliveries", queries.GetAvailableDeliveriesQuery{}.Validate, queries.ErrGetAvailableDeliveriesQueryIsNotConstructed},
		{"delivery history", queries.GetDeliveryHistoryQuery{}.Validate, queries.ErrGetDeliveryHistoryQueryIsNotConstructed},
		{"delivery earnings", queries.GetDeliveryEarningsQuery{}.Validate, queries.ErrGetDeliveryEarningsQueryIsNotConstructed},
		{"checkout total", queries.CalculateCheckoutTotalQuery{}.Validate, queries.ErrCalculateCheckoutTotalQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.want)
		})
	}
}

func TestEstimatedTime(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.Pending, "2-3 hours for confirmation"},
		{order.Processing, "24-48 hours for preparation"},
		{order.Shipped, "1-3 days for delivery"},
		{order.Delivered, "Delivered"},
		{order.Canceled, "Soon"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, queries.EstimatedTime(tt.status))
		})
	}
}

func TestNewGetUserOrdersQuery_RequiresUser(t *testing.T) {
	_, err := queries.NewGetUserOrdersQuery(kernel.UUID{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetDeliveryHistoryQuery(t *testing.T) {
	agent := kernel.NewUUID()

	t.Run("zero_values_use_defaults", func(t *testing.T) {
		q, err := queries.NewGetDeliveryHistoryQuery(agent, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, q.Page())
		assert.Equal(t, queries.DefaultHistoryPageSize, q.Limit())
	})

	t.Run("negative_page", func(t *testing.T) {
		_, err := queries.NewGetDeliveryHistoryQuery(agent, -1, 10)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("limit_above_max", func(t *testing.T) {
		_, err := queries.NewGetDeliveryHistoryQuery(agent, 1, queries.MaxHistoryPageSize+1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestParseEarningsPeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    queries.EarningsPeriod
		wantErr bool
	}{
		{in: "", want: queries.PeriodAll},
		{in: "week", want: queries.PeriodWeek},
		{in: " Month ", want: queries.PeriodMonth},
		{in: "all", want: queries.PeriodAll},
		{in: "year", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := queries.ParseEarningsPeriod(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEarningsPeriod_Since(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC), queries.PeriodWeek.Since(now))
	assert.Equal(t, time.Date(2025, 2, 13, 12, 0, 0, 0, time.UTC), queries.PeriodMonth.Since(now))
	assert.Equal(t, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), queries.PeriodAll.Since(now))
}

func TestNewCalculateCheckoutTotalQuery_RejectsUnknownMethod(t *testing.T) {
	_, err := queries.NewCalculateCheckoutTotalQuery(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, "drone", "")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
