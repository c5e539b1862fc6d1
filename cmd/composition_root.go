package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/eventbus"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/payment"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/push"
	"marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/application/eventhandlers"
	"marketplace/internal/core/application/sideeffects"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// CompositionRoot owns every long-lived dependency and builds handlers from them.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	registry   *prometheus.Registry

	calculator  services.PriceCalculator
	publisher   ports.EventPublisher
	bus         *eventbus.Bus
	idempotency ports.IdempotencyStore
	dispatcher  *sideeffects.Dispatcher

	closers []io.Closer
}

// NewCompositionRoot connects the optional infrastructure named in config:
// Kafka, Redis and RabbitMQ. Each one falls back to an in-process
// implementation when it is not configured.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   registry,
		calculator: services.NewDefaultPriceCalculator(),
	}

	if err := c.connectEvents(); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if err := c.connectIdempotency(); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	transport, err := c.connectPush()
	if err != nil {
		return nil, errors.Join(err, c.Close())
	}

	c.dispatcher = sideeffects.NewDispatcher(c.sideEffectsUoWFactory(), transport, config.PushTimeout, registry, logger)
	return c, nil
}

func (c *CompositionRoot) connectEvents() error {
	brokers := kafka.Brokers(c.config.KafkaBrokers)
	if len(brokers) == 0 {
		c.logger.Warn("KAFKA_BROKERS not set, events are delivered in process and lost on restart")
		c.bus = eventbus.New(c.logger)
		c.publisher = c.bus
		c.closers = append(c.closers, closerFunc(func() error {
			c.bus.Close()
			return nil
		}))
		return nil
	}

	publisher, err := kafka.NewPublisher(brokers)
	if err != nil {
		return fmt.Errorf("kafka publisher: %w", err)
	}
	c.publisher = publisher
	c.closers = append(c.closers, publisher)
	return nil
}

func (c *CompositionRoot) connectIdempotency() error {
	if c.config.RedisAddr == "" {
		c.logger.Warn("REDIS_ADDR not set, Idempotency-Key headers are ignored")
		return nil
	}
	store, err := redis.NewIdempotencyStore(c.config.RedisAddr, c.config.RedisPoolSize)
	if err != nil {
		return fmt.Errorf("redis idempotency store: %w", err)
	}
	c.idempotency = store
	c.closers = append(c.closers, store)
	return nil
}

func (c *CompositionRoot) connectPush() (ports.PushTransport, error) {
	if c.config.RabbitMQURL == "" {
		c.logger.Warn("RABBITMQ_URL not set, push notifications are only logged")
		return push.NewLogTransport(c.logger), nil
	}
	transport, err := push.NewAMQPTransport(c.config.RabbitMQURL, c.config.PushQueue)
	if err != nil {
		return nil, fmt.Errorf("amqp push transport: %w", err)
	}
	c.closers = append(c.closers, transport)
	return transport, nil
}

// Registry is the Prometheus registry shared by HTTP and domain metrics.
func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) Dispatcher() *sideeffects.Dispatcher {
	return c.dispatcher
}

// Close releases external connections. Pending pushes should be awaited
// through Dispatcher().Wait before calling it.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i].Close())
	}
	c.closers = nil
	return errors.Join(errs...)
}

// StartSubscribers attaches the review-eligibility subscriber to order.delivered
// events. The returned function blocks until ctx ends.
func (c *CompositionRoot) StartSubscribers(ctx context.Context) (func() error, error) {
	handler := eventhandlers.NewReviewEligibilityHandler(c.sideEffectsUoWFactory(), c.dispatcher, c.logger)

	if c.bus != nil {
		c.bus.Subscribe(c.config.KafkaDeliveredTopic, handler.Handle, 256)
		c.bus.Run(ctx)
		return func() error {
			<-ctx.Done()
			return nil
		}, nil
	}

	consumer, err := kafka.NewConsumer(
		kafka.Brokers(c.config.KafkaBrokers),
		c.config.KafkaDeliveredTopic,
		c.config.KafkaConsumerGroup,
		handler.Handle,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return func() error {
		defer consumer.Close()
		return consumer.Run(ctx)
	}, nil
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Commands{
			Cart:                   c.CreateCartCommandHandler(),
			InitiateCheckout:       c.CreateInitiateCheckoutCommandHandler(),
			UpdateCheckoutDelivery: c.CreateUpdateCheckoutDeliveryCommandHandler(),
			CreateOrder:            c.CreateCreateOrderCommandHandler(),
			ChangeOrderStatus:      c.CreateChangeOrderStatusCommandHandler(),
			AcceptDelivery:         c.CreateAcceptDeliveryCommandHandler(),
			RecordTracking:         c.CreateRecordTrackingCommandHandler(),
			NotifyOrderReady:       c.CreateNotifyOrderReadyCommandHandler(),
			ProcessPayment:         c.CreateProcessPaymentCommandHandler(),
			CreateReview:           c.CreateCreateReviewCommandHandler(),
			RegisterDeviceToken:    c.CreateRegisterDeviceTokenCommandHandler(),
		},
		httpin.Queries{
			UserOrders:             queries.NewGetUserOrdersQueryHandler(c.gormDB),
			OrderDetails:           queries.NewGetOrderDetailsQueryHandler(c.gormDB),
			ProducerOrders:         queries.NewGetProducerOrdersQueryHandler(c.gormDB),
			ProducerOrderDetails:   queries.NewGetProducerOrderDetailsQueryHandler(c.gormDB),
			OrderStatusHistory:     queries.NewGetOrderStatusHistoryQueryHandler(c.gormDB),
			OrderTracking:          queries.NewGetOrderTrackingQueryHandler(c.gormDB),
			CalculateCheckoutTotal: queries.NewCalculateCheckoutTotalQueryHandler(c.gormDB, c.calculator),
			AvailableDeliveries:    queries.NewGetAvailableDeliveriesQueryHandler(c.gormDB),
			AcceptedDeliveries:     queries.NewGetAcceptedDeliveriesQueryHandler(c.gormDB),
			DeliveryHistory:        queries.NewGetDeliveryHistoryQueryHandler(c.gormDB),
			DeliveryEarnings:       queries.NewGetDeliveryEarningsQueryHandler(c.gormDB),
		},
		c.idempotency,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	relay := c.CreateRelayOutboxCommandHandler()
	purge := c.CreatePurgeDeviceTokensCommandHandler()
	return jobs.NewJobManager(&relay, &purge, jobs.Schedules{
		OutboxRelay:        c.config.OutboxSchedule,
		DeviceTokenCleanup: c.config.TokenCleanupSchedule,
		TokenRetention:     c.config.TokenRetention,
	}, c.logger)
}

func (c *CompositionRoot) CreateCartCommandHandler() commands.CartCommandHandler {
	var f commands.CartUoWFactory = FuncUoWFactory[commands.CartUoW](func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCartCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncUoWFactory[commands.OrderUoW](func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateInitiateCheckoutCommandHandler() commands.InitiateCheckoutCommandHandler {
	creator := c.CreateCreateOrderCommandHandler()
	return commands.NewInitiateCheckoutCommandHandler(c.checkoutUoWFactory(), &creator)
}

func (c *CompositionRoot) CreateUpdateCheckoutDeliveryCommandHandler() commands.UpdateCheckoutDeliveryCommandHandler {
	return commands.NewUpdateCheckoutDeliveryCommandHandler(c.checkoutUoWFactory(), c.calculator)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.statusUoWFactory(), c.dispatcher, c.config.KafkaDeliveredTopic)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.statusUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateRecordTrackingCommandHandler() commands.RecordTrackingCommandHandler {
	var f commands.TrackingUoWFactory = FuncUoWFactory[commands.TrackingUoW](func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordTrackingCommandHandler(f)
}

func (c *CompositionRoot) CreateNotifyOrderReadyCommandHandler() commands.NotifyOrderReadyCommandHandler {
	return commands.NewNotifyOrderReadyCommandHandler(c.statusUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncUoWFactory[commands.PaymentUoW](func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPaymentCommandHandler(f, payment.NewSimulatedAuthorizer(), c.config.PaymentTimeout, c.logger)
}

func (c *CompositionRoot) CreateCreateReviewCommandHandler() commands.CreateReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncUoWFactory[commands.ReviewUoW](func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDeviceTokenCommandHandler() commands.RegisterDeviceTokenCommandHandler {
	return commands.NewRegisterDeviceTokenCommandHandler(c.deviceTokenUoWFactory())
}

func (c *CompositionRoot) CreatePurgeDeviceTokensCommandHandler() commands.PurgeDeviceTokensCommandHandler {
	return commands.NewPurgeDeviceTokensCommandHandler(c.deviceTokenUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncUoWFactory[commands.OutboxUoW](func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncUoWFactory[commands.CheckoutUoW](func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) statusUoWFactory() commands.StatusUoWFactory {
	return FuncUoWFactory[commands.StatusUoW](func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deviceTokenUoWFactory() commands.DeviceTokenUoWFactory {
	return FuncUoWFactory[commands.DeviceTokenUoW](func() commands.DeviceTokenUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sideEffectsUoWFactory() sideeffects.UoWFactory {
	return FuncUoWFactory[sideeffects.UoW](func() sideeffects.UoW {
		return c.uowFactory.Create()
	})
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

// FuncUoWFactory adapts a constructor function to any of the narrow
// unit-of-work factory interfaces.
type FuncUoWFactory[T any] func() T

func (f FuncUoWFactory[T]) Create() T {
	return f()
}
