package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func idOf(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

// kernelID converts a bound request id; the nil UUID is rejected.
func kernelID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	k, err := kernel.UUIDFromBytes(id)
	if err != nil {
		return kernel.UUID{}, badRequest("Invalid " + name)
	}
	return k, nil
}

func optionalID(id *openapi_types.UUID) kernel.UUID {
	if id == nil {
		return kernel.UUID{}
	}
	k, err := kernel.UUIDFromBytes(*id)
	if err != nil {
		return kernel.UUID{}
	}
	return k
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func money(d decimal.Decimal) servers.Money {
	return d.String()
}

func toCart(c *cart.Cart) servers.Cart {
	items := make([]servers.CartItem, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, servers.CartItem{
			Id:        idOf(item.ID()),
			ProductId: idOf(item.ProductID()),
			Quantity:  item.Quantity(),
			UnitPrice: money(item.UnitPrice()),
			Price:     money(item.Price()),
		})
	}
	return servers.Cart{
		Id:        idOf(c.ID()),
		UserId:    idOf(c.UserID()),
		Items:     items,
		Total:     money(c.Total()),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toPriceBreakdown(p checkout.Pricing) servers.PriceBreakdown {
	return servers.PriceBreakdown{
		Subtotal:    money(p.Subtotal),
		Discount:    money(p.Discount),
		DeliveryFee: money(p.DeliveryFee),
		Total:       money(p.Total),
	}
}

func toCheckout(c *checkout.Checkout) servers.Checkout {
	pricing := c.Pricing()
	response := servers.Checkout{
		Id:             idOf(c.ID()),
		CartId:         idOf(c.CartID()),
		OrderId:        idOf(c.OrderID()),
		DeliveryMethod: c.DeliveryMethod().String(),
		CouponCode:     optionalString(c.CouponCode()),
		Subtotal:       money(pricing.Subtotal),
		Discount:       money(pricing.Discount),
		DeliveryFee:    money(pricing.DeliveryFee),
		Total:          money(pricing.Total),
		Status:         servers.CheckoutStatus(c.Status()),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
	if !c.AddressID().IsZero() {
		addressID := idOf(c.AddressID())
		response.AddressId = &addressID
	}
	return response
}

// toCreatedOrder renders a freshly placed order. Nothing in it is reviewable yet.
func toCreatedOrder(o *order.Order) servers.OrderDetails {
	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, servers.OrderItem{
			Id:         idOf(item.ID()),
			ProductId:  idOf(item.ProductID()),
			ProducerId: idOf(item.ProducerID()),
			Quantity:   item.Quantity(),
			UnitPrice:  money(item.UnitPrice()),
			TotalPrice: money(item.TotalPrice()),
			Notes:      optionalString(item.Notes()),
		})
	}
	return servers.OrderDetails{
		Id:              idOf(o.ID()),
		UserId:          idOf(o.UserID()),
		Status:          o.Status().String(),
		TotalPrice:      money(o.TotalPrice()),
		ShippingAddress: optionalString(o.ShippingAddress()),
		PaymentMethod:   optionalString(o.PaymentMethod()),
		TrackingCode:    optionalString(o.TrackingCode()),
		ReadyForPickup:  o.ReadyForPickup(),
		ReadyNotifiedAt: o.ReadyNotifiedAt(),
		Items:           items,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func toOrderItems(views []queries.OrderItemView) []servers.OrderItem {
	items := make([]servers.OrderItem, 0, len(views))
	for _, v := range views {
		items = append(items, servers.OrderItem{
			Id:          idOf(v.ID),
			ProductId:   idOf(v.ProductID),
			ProductName: optionalString(v.ProductName),
			ProducerId:  idOf(v.ProducerID),
			Quantity:    v.Quantity,
			UnitPrice:   money(v.UnitPrice),
			TotalPrice:  money(v.TotalPrice),
			Notes:       optionalString(v.Notes),
			Reviewable:  v.Reviewable,
		})
	}
	return items
}

func toOrderSummaries(summaries []queries.OrderSummary) []servers.OrderSummary {
	response := make([]servers.OrderSummary, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, servers.OrderSummary{
			Id:           idOf(s.ID),
			Status:       s.Status.String(),
			TotalPrice:   money(s.TotalPrice),
			ItemCount:    s.ItemCount,
			CustomerName: optionalString(s.CustomerName),
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
		})
	}
	return response
}

func toOrderDetails(d queries.OrderDetails) servers.OrderDetails {
	return servers.OrderDetails{
		Id:              idOf(d.ID),
		UserId:          idOf(d.UserID),
		Status:          d.Status.String(),
		TotalPrice:      money(d.TotalPrice),
		ShippingAddress: optionalString(d.ShippingAddress),
		PaymentMethod:   optionalString(d.PaymentMethod),
		TrackingCode:    optionalString(d.TrackingCode),
		ReadyForPickup:  d.ReadyForPickup,
		ReadyNotifiedAt: d.ReadyNotifiedAt,
		Items:           toOrderItems(d.Items),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// toOrder maps an order right after a status change. No review can exist
// yet at that point, so items are reviewable exactly when the order is delivered.
func toOrder(o *order.Order) servers.OrderDetails {
	reviewable := o.Status() == order.Delivered
	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, servers.OrderItem{
			Id:         idOf(item.ID()),
			ProductId:  idOf(item.ProductID()),
			ProducerId: idOf(item.ProducerID()),
			Quantity:   item.Quantity(),
			UnitPrice:  money(item.UnitPrice()),
			TotalPrice: money(item.TotalPrice()),
			Notes:      optionalString(item.Notes()),
			Reviewable: reviewable,
		})
	}
	return servers.OrderDetails{
		Id:              idOf(o.ID()),
		UserId:          idOf(o.UserID()),
		Status:          o.Status().String(),
		TotalPrice:      money(o.TotalPrice()),
		ShippingAddress: optionalString(o.ShippingAddress()),
		PaymentMethod:   optionalString(o.PaymentMethod()),
		TrackingCode:    optionalString(o.TrackingCode()),
		ReadyForPickup:  o.ReadyForPickup(),
		ReadyNotifiedAt: o.ReadyNotifiedAt(),
		Items:           items,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func toTrackingPoint(p *delivery.TrackingPoint) servers.TrackingPoint {
	return servers.TrackingPoint{
		Id:         idOf(p.ID()),
		OrderId:    idOf(p.OrderID()),
		Status:     p.Status().String(),
		Latitude:   float64(p.Location().Latitude()),
		Longitude:  float64(p.Location().Longitude()),
		RecordedAt: p.RecordedAt(),
	}
}

func toOrderTracking(t queries.OrderTracking) servers.OrderTracking {
	timeline := make([]servers.TrackingEvent, 0, len(t.Timeline))
	for _, e := range t.Timeline {
		timeline = append(timeline, servers.TrackingEvent{
			Status:        e.Status.String(),
			Notes:         optionalString(e.Notes),
			EstimatedTime: e.EstimatedTime,
			At:            e.At,
		})
	}
	response := servers.OrderTracking{
		OrderId:       idOf(t.OrderID),
		CurrentStatus: t.CurrentStatus.String(),
		EstimatedTime: t.EstimatedTime,
		Timeline:      timeline,
	}
	if t.Location != nil {
		response.Location = &servers.TrackedLocation{
			Latitude:   t.Location.Latitude,
			Longitude:  t.Location.Longitude,
			RecordedAt: t.Location.RecordedAt,
		}
	}
	return response
}

func toStatusHistory(entries []queries.StatusHistoryEntry) []servers.StatusHistoryEntry {
	response := make([]servers.StatusHistoryEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, servers.StatusHistoryEntry{
			Id:             idOf(e.ID),
			Status:         e.Status.String(),
			PreviousStatus: e.PreviousStatus.String(),
			Notes:          optionalString(e.Notes),
			ActorId:        idOf(e.ActorID),
			CreatedAt:      e.CreatedAt,
		})
	}
	return response
}

func toDeliveryOrders(views []queries.DeliveryOrderView) []servers.DeliveryOrder {
	response := make([]servers.DeliveryOrder, 0, len(views))
	for _, v := range views {
		response = append(response, servers.DeliveryOrder{
			Id:              idOf(v.ID),
			UserId:          idOf(v.UserID),
			CustomerName:    v.CustomerName,
			CustomerPhone:   optionalString(v.CustomerPhone),
			Status:          v.Status.String(),
			TotalPrice:      money(v.TotalPrice),
			DeliveryFee:     money(v.DeliveryFee),
			ShippingAddress: optionalString(v.ShippingAddress),
			PaymentMethod:   optionalString(v.PaymentMethod),
			TrackingCode:    optionalString(v.TrackingCode),
			AcceptedAt:      v.AcceptedAt,
			Items:           toOrderItems(v.Items),
			CreatedAt:       v.CreatedAt,
			UpdatedAt:       v.UpdatedAt,
		})
	}
	return response
}

func toDeliveryHistory(page queries.DeliveryHistoryPage) servers.DeliveryHistoryPage {
	deliveries := make([]servers.DeliveryHistoryEntry, 0, len(page.Deliveries))
	for _, d := range page.Deliveries {
		acceptedAt := d.AcceptedAt
		deliveries = append(deliveries, servers.DeliveryHistoryEntry{
			OrderId:         idOf(d.OrderID),
			TrackingCode:    optionalString(d.TrackingCode),
			CustomerName:    d.CustomerName,
			CustomerPhone:   optionalString(d.CustomerPhone),
			ShippingAddress: optionalString(d.ShippingAddress),
			TotalPrice:      money(d.TotalPrice),
			DeliveryFee:     money(d.DeliveryFee),
			AcceptedAt:      &acceptedAt,
			DeliveredAt:     d.DeliveredAt,
			CreatedAt:       d.CreatedAt,
			Items:           toOrderItems(d.Items),
		})
	}
	p := page.Pagination
	return servers.DeliveryHistoryPage{
		Deliveries: deliveries,
		Pagination: servers.Pagination{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      int(p.Total),
			TotalPages: p.TotalPages,
			HasNext:    p.HasNext,
			HasPrev:    p.HasPrev,
		},
	}
}

func toDeliveryEarnings(e queries.DeliveryEarnings) (servers.DeliveryEarnings, error) {
	daily := make([]servers.DailyEarnings, 0, len(e.Daily))
	for _, day := range e.Daily {
		date, err := time.Parse(time.DateOnly, day.Date)
		if err != nil {
			return servers.DeliveryEarnings{}, err
		}
		deliveries := make([]servers.EarnedDelivery, 0, len(day.Deliveries))
		for _, d := range day.Deliveries {
			deliveries = append(deliveries, servers.EarnedDelivery{
				OrderId:         idOf(d.OrderID),
				CustomerName:    d.CustomerName,
				ShippingAddress: optionalString(d.ShippingAddress),
				DeliveryFee:     money(d.DeliveryFee),
				DeliveredAt:     d.DeliveredAt,
			})
		}
		daily = append(daily, servers.DailyEarnings{
			Date:          openapi_types.Date{Time: date},
			Total:         money(day.Total),
			DeliveryCount: day.DeliveryCount,
			Deliveries:    deliveries,
		})
	}
	return servers.DeliveryEarnings{
		Period: string(e.Period),
		Daily:  daily,
		Stats: servers.EarningsStats{
			TotalEarnings:      money(e.Stats.TotalEarnings),
			TotalDeliveries:    e.Stats.TotalDeliveries,
			AveragePerDelivery: money(e.Stats.AveragePerDelivery),
			CurrentMonth:       money(e.Stats.CurrentMonth),
		},
	}, nil
}
