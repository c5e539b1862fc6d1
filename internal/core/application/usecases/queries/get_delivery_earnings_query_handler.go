package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDeliveryEarningsQueryHandler counts only deliveries whose checkout
// carried a delivery fee: pickups earn the agent nothing.
type GetDeliveryEarningsQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryEarningsQueryHandler(db *gorm.DB) GetDeliveryEarningsQueryHandler {
	return GetDeliveryEarningsQueryHandler{db: db}
}

func (h GetDeliveryEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryEarningsQuery,
) (DeliveryEarnings, error) {
	if err := query.Validate(); err != nil {
		return DeliveryEarnings{}, err
	}

	delivered := order.Delivered.String()
	asOf := query.AsOf()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT d.id, d.customer_name, d.shipping_address, d.delivery_fee, d.delivered_at
		FROM (`+deliveredOrders+`) d
		WHERE d.delivery_fee > 0 AND d.delivered_at >= ? AND d.delivered_at <= ?
		ORDER BY d.delivered_at DESC, d.id
	`, delivered, delivered, query.AgentID().Bytes(), query.Period().Since(asOf), asOf).Rows()
	if err != nil {
		return DeliveryEarnings{}, err
	}
	defer rows.Close()

	var deliveries []EarnedDelivery
	for rows.Next() {
		var (
			d  EarnedDelivery
			id uuid.UUID
		)
		if err = rows.Scan(&id, &d.CustomerName, &d.ShippingAddress, &d.DeliveryFee, &d.DeliveredAt); err != nil {
			return DeliveryEarnings{}, err
		}
		if d.OrderID, err = kernel.UUIDFromBytes(id); err != nil {
			return DeliveryEarnings{}, err
		}
		d.DeliveredAt = d.DeliveredAt.UTC()
		deliveries = append(deliveries, d)
	}
	if err = rows.Err(); err != nil {
		return DeliveryEarnings{}, err
	}

	return summarizeEarnings(query.Period(), asOf, deliveries), nil
}

// summarizeEarnings buckets deliveries, already sorted newest first, by day.
func summarizeEarnings(period EarningsPeriod, asOf time.Time, deliveries []EarnedDelivery) DeliveryEarnings {
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	result := DeliveryEarnings{
		Period: period,
		Daily:  make([]DailyEarnings, 0),
		Stats: EarningsStats{
			TotalEarnings:      decimal.Zero,
			AveragePerDelivery: decimal.Zero,
			CurrentMonth:       decimal.Zero,
		},
	}

	for _, d := range deliveries {
		day := d.DeliveredAt.Format(time.DateOnly)
		if n := len(result.Daily); n == 0 || result.Daily[n-1].Date != day {
			result.Daily = append(result.Daily, DailyEarnings{Date: day, Total: decimal.Zero})
		}
		bucket := &result.Daily[len(result.Daily)-1]
		bucket.Total = bucket.Total.Add(d.DeliveryFee)
		bucket.DeliveryCount++
		bucket.Deliveries = append(bucket.Deliveries, d)

		result.Stats.TotalEarnings = result.Stats.TotalEarnings.Add(d.DeliveryFee)
		result.Stats.TotalDeliveries++
		if !d.DeliveredAt.Before(monthStart) {
			result.Stats.CurrentMonth = result.Stats.CurrentMonth.Add(d.DeliveryFee)
		}
	}

	if result.Stats.TotalDeliveries > 0 {
		result.Stats.AveragePerDelivery = result.Stats.TotalEarnings.
			DivRound(decimal.NewFromInt(int64(result.Stats.TotalDeliveries)), 2)
	}
	return result
}
