package http

import (
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const (
	defaultHistoryPage  = 1
	defaultHistoryLimit = 20
)

var _ servers.ServerInterface = (*Server)(nil)

// Commands groups the write use cases served over HTTP.
type Commands struct {
	Cart                   commands.CartCommandHandler
	InitiateCheckout       commands.InitiateCheckoutCommandHandler
	UpdateCheckoutDelivery commands.UpdateCheckoutDeliveryCommandHandler
	CreateOrder            commands.CreateOrderCommandHandler
	ChangeOrderStatus      commands.ChangeOrderStatusCommandHandler
	AcceptDelivery         commands.AcceptDeliveryCommandHandler
	RecordTracking         commands.RecordTrackingCommandHandler
	NotifyOrderReady       commands.NotifyOrderReadyCommandHandler
	ProcessPayment         commands.ProcessPaymentCommandHandler
	CreateReview           commands.CreateReviewCommandHandler
	RegisterDeviceToken    commands.RegisterDeviceTokenCommandHandler
}

// Queries groups the read use cases served over HTTP.
type Queries struct {
	UserOrders             queries.GetUserOrdersQueryHandler
	OrderDetails           queries.GetOrderDetailsQueryHandler
	ProducerOrders         queries.GetProducerOrdersQueryHandler
	ProducerOrderDetails   queries.GetProducerOrderDetailsQueryHandler
	OrderStatusHistory     queries.GetOrderStatusHistoryQueryHandler
	OrderTracking          queries.GetOrderTrackingQueryHandler
	CalculateCheckoutTotal queries.CalculateCheckoutTotalQueryHandler
	AvailableDeliveries    queries.GetAvailableDeliveriesQueryHandler
	AcceptedDeliveries     queries.GetAcceptedDeliveriesQueryHandler
	DeliveryHistory        queries.GetDeliveryHistoryQueryHandler
	DeliveryEarnings       queries.GetDeliveryEarningsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries

	// idempotency is optional; without it Idempotency-Key headers are ignored.
	idempotency ports.IdempotencyStore
	logger      *slog.Logger
	now         func() time.Time
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds Commands, qs Queries, idempotency ports.IdempotencyStore, logger *slog.Logger) *Server {
	return &Server{
		commands:    cmds,
		queries:     qs,
		idempotency: idempotency,
		logger:      logger.With("component", "http"),
		now:         time.Now,
	}
}

// GetCart handles GET /api/v1/cart - returns the caller's cart, creating it on first use.
func (s *Server) GetCart(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewGetOrCreateCartCommand(actor.ID())
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.commands.Cart.HandleGetOrCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCart(c))
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.AddCartItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}
	productID, err := kernelID("productId", body.ProductId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(actor.ID(), productID, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}
	c, err := s.commands.Cart.HandleAddItem(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCart(c))
}

// UpdateCartItem handles PATCH /api/v1/cart/items/{itemId}. A quantity of zero
// or less removes the line.
func (s *Server) UpdateCartItem(ctx echo.Context, itemId servers.ItemId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.UpdateCartItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}
	itemID, err := kernelID("itemId", itemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetCartItemQuantityCommand(actor.ID(), itemID, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}
	c, err := s.commands.Cart.HandleSetItemQuantity(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCart(c))
}

// RemoveCartItem handles DELETE /api/v1/cart/items/{itemId}.
func (s *Server) RemoveCartItem(ctx echo.Context, itemId servers.ItemId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	itemID, err := kernelID("itemId", itemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(actor.ID(), itemID)
	if err != nil {
		return s.fail(ctx, err)
	}
	c, err := s.commands.Cart.HandleRemoveItem(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCart(c))
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewClearCartCommand(actor.ID())
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.commands.Cart.HandleClear(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCart(c))
}

// InitiateCheckout handles POST /api/v1/checkout/initiate - turns the cart into
// a pending order and its checkout.
func (s *Server) InitiateCheckout(ctx echo.Context, params servers.InitiateCheckoutParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.InitiateCheckoutJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}
	cartID, err := kernelID("cartId", body.CartId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewInitiateCheckoutCommand(actor.ID(), cartID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.idempotent(ctx, actor, params.IdempotencyKey, func() (int, any, error) {
		c, err := s.commands.InitiateCheckout.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusCreated, toCheckout(c), nil
	})
}

// CalculateCheckoutTotal handles POST /api/v1/checkout/calculate-total - prices
// a delivery choice without saving it.
func (s *Server) CalculateCheckoutTotal(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.CalculateCheckoutTotalJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}
	orderID, err := kernelID("orderId", body.OrderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewCalculateCheckoutTotalQuery(
		actor.ID(),
		orderID,
		optionalID(body.AddressId),
		string(body.DeliveryMethod),
		valueOf(body.CouponCode),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	pricing, err := s.queries.CalculateCheckoutTotal.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toPriceBreakdown(pricing))
}

// UpdateCheckoutDelivery handles PATCH /api/v1/checkout/address-delivery.
func (s *Server) UpdateCheckoutDelivery(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.UpdateCheckoutDeliveryJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}
	orderID, err := kernelID("orderId", body.OrderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateCheckoutDeliveryCommand(
		actor.ID(),
		orderID,
		optionalID(body.AddressId),
		string(body.DeliveryMethod),
		valueOf(body.CouponCode),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	c, err := s.commands.UpdateCheckoutDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCheckout(c))
}

// CreateOrder handles POST /api/v1/orders - places an order for explicit lines.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.CreateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		productID, err := kernelID("productId", item.ProductId)
		if err != nil {
			return s.fail(ctx, err)
		}
		lines = append(lines, commands.OrderLine{
			ProductID: productID,
			Quantity:  item.Quantity,
			Notes:     valueOf(item.Notes),
		})
	}
	cmd, err := commands.NewCreateOrderCommand(actor.ID(), lines, valueOf(body.ShippingAddress), valueOf(body.PaymentMethod))
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.idempotent(ctx, actor, params.IdempotencyKey, func() (int, any, error) {
		o, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusCreated, toCreatedOrder(o), nil
	})
}

// ListOrders handles GET /api/v1/orders - the caller's orders, newest first.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetUserOrdersQuery(actor.ID())
	if err != nil {
		return s.fail(ctx, err)
	}

	summaries, err := s.queries.UserOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderSummaries(summaries))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := kernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderDetailsQuery(actor, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	details, err := s.queries.OrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetails(details))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{orderId}/status and answers with the updated order.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.ChangeOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}
	orderID, err := kernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}
	expected := order.Unknown
	if body.ExpectedStatus != nil {
		if expected, err = order.ParseStatus(*body.ExpectedStatus); err != nil {
			return s.fail(ctx, err)
		}
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actor, orderID, status, valueOf(body.Notes), expected)
	if err != nil {
		return s.fail(ctx, err)
	}
	updated, err := s.commands.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// GetOrderStatusHistory handles GET /api/v1/orders/{orderId}/status-history.
func (s *Server) GetOrderStatusHistory(ctx echo.Context, orderId servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := kernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderStatusHistoryQuery(actor, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.queries.OrderStatusHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toStatusHistory(entries))
}

// GetOrderTracking handles GET /api/v1/orders/{orderId}/tracking.
func (s *Server) GetOrderTracking(ctx echo.Context, orderId servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := kernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderTrackingQuery(actor, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	tracking, err := s.queries.OrderTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderTracking(tracking))
}

// RecordTracking handles POST /api/v1/orders/{orderId}/tracking for the
// delivery agent carrying the order.
func (s *Server) RecordTracking(ctx echo.Context, orderId servers.OrderId) error {
	actor, err := actorFrom(ctx, kernel.RoleDeliveryAgent)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.RecordTrackingJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}
	orderID, err := kernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRecordTrackingCommand(actor, orderID, body.Latitude, body.Longitude)
	if err != nil {
		return s.fail(ctx, err)
	}

	point, err := s.commands.RecordTracking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toTrackingPoint(point))
}

// ProcessPayment handles POST /api/v1/payments.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.ProcessPaymentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}
	orderID, err := kernelID("orderId", body.OrderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewProcessPaymentCommand(actor.ID(), orderID, string(body.Method))
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.commands.ProcessPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.PaymentResult{
		Status:        servers.PaymentResultStatus(result.Status),
		TransactionId: optionalString(result.TransactionID),
	})
}

// ListProducerOrders handles GET /api/v1/producers/me/orders.
func (s *Server) ListProducerOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx, kernel.RoleProducer)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetProducerOrdersQuery(actor.ID())
	if err != nil {
		return s.fail(ctx, err)
	}

	summaries, err := s.queries.ProducerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderSummaries(summaries))
}

// GetProducerOrder handles GET /api/v1/producers/me/orders/{orderId}.
func (s *Server) GetProducerOrder(ctx echo.Context, orderId servers.OrderId) error {
	actor, err := actorFrom(ctx, kernel.RoleProducer)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := kernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetProducerOrderDetailsQuery(actor.ID(), orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	details, err := s.queries.ProducerOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetails(details))
}

// NotifyOrderReady handles POST /api/v1/producers/me/orders/{orderId}/notify-ready.
func (s *Server) NotifyOrderReady(ctx echo.Context, orderId servers.OrderId) error {
	actor, err := actorFrom(ctx, kernel.RoleProducer)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.NotifyOrderReadyJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}
	orderID, err := kernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewNotifyOrderReadyCommand(actor, orderID, valueOf(body.Message))
	if err != nil {
		return s.fail(ctx, err)
	}
	message, err := s.commands.NotifyOrderReady.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.NotifyReadyResponse{Message: message})
}

// ListAvailableDeliveries handles GET /api/v1/delivery/orders/available.
func (s *Server) ListAvailableDeliveries(ctx echo.Context) error {
	if _, err := actorFrom(ctx, kernel.RoleDeliveryAgent); err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.queries.AvailableDeliveries.Handle(ctx.Request().Context(), queries.NewGetAvailableDeliveriesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryOrders(views))
}

// ListAcceptedDeliveries handles GET /api/v1/delivery/orders/accepted.
func (s *Server) ListAcceptedDeliveries(ctx echo.Context) error {
	actor, err := actorFrom(ctx, kernel.RoleDeliveryAgent)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetAcceptedDeliveriesQuery(actor.ID())
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.queries.AcceptedDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryOrders(views))
}

// AcceptDelivery handles POST /api/v1/delivery/orders/{orderId}/accept.
func (s *Server) AcceptDelivery(ctx echo.Context, orderId servers.OrderId) error {
	actor, err := actorFrom(ctx, kernel.RoleDeliveryAgent)
	if err != nil {
		return s.fail(ctx, err)
	}
	orderID, err := kernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAcceptDeliveryCommand(actor, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	assignment, err := s.commands.AcceptDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.DeliveryAcceptance{
		OrderId:    idOf(assignment.OrderID()),
		AgentId:    idOf(assignment.AgentID()),
		AcceptedAt: assignment.AcceptedAt(),
	})
}

// GetDeliveryHistory handles GET /api/v1/delivery/history.
func (s *Server) GetDeliveryHistory(ctx echo.Context, params servers.GetDeliveryHistoryParams) error {
	actor, err := actorFrom(ctx, kernel.RoleDeliveryAgent)
	if err != nil {
		return s.fail(ctx, err)
	}
	page, limit := defaultHistoryPage, defaultHistoryLimit
	if params.Page != nil {
		page = *params.Page
	}
	if params.Limit != nil {
		limit = *params.Limit
	}
	query, err := queries.NewGetDeliveryHistoryQuery(actor.ID(), page, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	history, err := s.queries.DeliveryHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryHistory(history))
}

// GetDeliveryEarnings handles GET /api/v1/delivery/earnings.
func (s *Server) GetDeliveryEarnings(ctx echo.Context, params servers.GetDeliveryEarningsParams) error {
	actor, err := actorFrom(ctx, kernel.RoleDeliveryAgent)
	if err != nil {
		return s.fail(ctx, err)
	}
	var period string
	if params.Period != nil {
		period = string(*params.Period)
	}
	query, err := queries.NewGetDeliveryEarningsQuery(actor.ID(), period, s.now())
	if err != nil {
		return s.fail(ctx, err)
	}

	earnings, err := s.queries.DeliveryEarnings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	response, err := toDeliveryEarnings(earnings)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateReview handles POST /api/v1/reviews.
func (s *Server) CreateReview(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.CreateReviewJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}
	orderItemID, err := kernelID("orderItemId", body.OrderItemId)
	if err != nil {
		return s.fail(ctx, err)
	}
	productID, err := kernelID("productId", body.ProductId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateReviewCommand(actor.ID(), orderItemID, productID, body.Rating, valueOf(body.Comment))
	if err != nil {
		return s.fail(ctx, err)
	}
	r, err := s.commands.CreateReview.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, servers.Review{
		Id:          idOf(r.ID()),
		OrderItemId: idOf(r.OrderItemID()),
		ProductId:   idOf(r.ProductID()),
		Rating:      r.Rating(),
		Comment:     optionalString(r.Comment()),
		CreatedAt:   r.CreatedAt(),
	})
}

// RegisterDeviceToken handles POST /api/v1/notifications/device-tokens.
func (s *Server) RegisterDeviceToken(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body servers.RegisterDeviceTokenJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequest("Invalid request body"))
	}

	cmd, err := commands.NewRegisterDeviceTokenCommand(actor.ID(), body.Token, string(body.Platform))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.RegisterDeviceToken.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
