package http

import (
	"encoding/json"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2,
		decimal.RequireFromString("5.99"), decimal.RequireFromString("11.98"), "ripe")
	now := time.Now().UTC()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:              kernel.NewUUID(),
		UserID:          kernel.NewUUID(),
		Status:          status,
		TotalPrice:      decimal.RequireFromString("11.98"),
		ShippingAddress: "Rua A, 10",
		TrackingCode:    "TRK-1",
		CreatedAt:       now,
		UpdatedAt:       now,
	}, []*order.Item{item})
	require.NoError(t, err)
	return o
}

func TestToOrder_ReturnsOrderNotTransition(t *testing.T) {
	o := restoredOrder(t, order.Shipped)

	body, err := json.Marshal(toOrder(o))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, o.ID().String(), got["id"])
	assert.Equal(t, "shipped", got["status"])
	assert.Equal(t, "11.98", got["totalPrice"])
	assert.Equal(t, "TRK-1", got["trackingCode"])
	assert.NotContains(t, got, "from")
	assert.NotContains(t, got, "to")

	items, ok := got["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, false, items[0].(map[string]any)["reviewable"])
}

func TestToOrder_DeliveredItemsAreReviewable(t *testing.T) {
	o := restoredOrder(t, order.Delivered)

	response := toOrder(o)

	require.Len(t, response.Items, 1)
	assert.True(t, response.Items[0].Reviewable)
	assert.Equal(t, "delivered", response.Status)
}

func TestToOrderTracking_OmitsUnknownLocation(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tracking := queries.OrderTracking{
		OrderID:       kernel.NewUUID(),
		CurrentStatus: order.Processing,
		EstimatedTime: queries.EstimatedTime(order.Processing),
		Timeline: []queries.TrackingEvent{
			{Status: order.Pending, EstimatedTime: queries.EstimatedTime(order.Pending), At: at},
			{Status: order.Processing, Notes: "accepted", EstimatedTime: queries.EstimatedTime(order.Processing), At: at.Add(time.Hour)},
		},
	}

	body, err := json.Marshal(toOrderTracking(tracking))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "processing", got["currentStatus"])
	assert.Equal(t, "24-48 hours for preparation", got["estimatedTime"])
	assert.NotContains(t, got, "location")
	timeline, ok := got["timeline"].([]any)
	require.True(t, ok)
	require.Len(t, timeline, 2)
	assert.Equal(t, "accepted", timeline[1].(map[string]any)["notes"])
}

func TestToOrderTracking_LatestLocation(t *testing.T) {
	recordedAt := time.Now().UTC()
	tracking := queries.OrderTracking{
		OrderID:       kernel.NewUUID(),
		CurrentStatus: order.Shipped,
		EstimatedTime: queries.EstimatedTime(order.Shipped),
		Location:      &queries.TrackedLocation{Latitude: -23.56, Longitude: -46.64, RecordedAt: recordedAt},
	}

	response := toOrderTracking(tracking)

	require.NotNil(t, response.Location)
	assert.InDelta(t, -23.56, response.Location.Latitude, 1e-9)
	assert.InDelta(t, -46.64, response.Location.Longitude, 1e-9)
	assert.Equal(t, recordedAt, response.Location.RecordedAt)
	assert.Empty(t, response.Timeline)
}
