package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, previous order.Status) error {
	return m.Called(ctx, o, previous).Error(0)
}

func (m *MockOrderRepository) MarkPaid(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByItem(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, itemID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) GetByUserForUpdate(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

func (m *MockCatalogRepository) FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]*catalog.Product)
	return products, args.Error(1)
}

func (m *MockCatalogRepository) DecreaseStockForOrder(ctx context.Context, orderID kernel.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCheckoutRepository struct{ mock.Mock }

func (m *MockCheckoutRepository) Add(ctx context.Context, c *checkout.Checkout) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCheckoutRepository) Update(ctx context.Context, c *checkout.Checkout) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCheckoutRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*checkout.Checkout, error) {
	args := m.Called(ctx, orderID)
	c, _ := args.Get(0).(*checkout.Checkout)
	return c, args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *delivery.Assignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAssignmentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Assignment, error) {
	args := m.Called(ctx, orderID)
	a, _ := args.Get(0).(*delivery.Assignment)
	return a, args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, p *delivery.TrackingPoint) error {
	return m.Called(ctx, p).Error(0)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) ExistsForOrderItem(ctx context.Context, userID, orderItemID kernel.UUID) (bool, error) {
	args := m.Called(ctx, userID, orderItemID)
	return args.Bool(0), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, msg ports.OutboxMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]ports.OutboxMessage)
	return msgs, args.Error(1)
}

func (m *MockOutboxRepository) MarkSent(ctx context.Context, id kernel.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type MockDeviceTokenRepository struct{ mock.Mock }

func (m *MockDeviceTokenRepository) Register(ctx context.Context, userID kernel.UUID, token, platform string) error {
	return m.Called(ctx, userID, token, platform).Error(0)
}

func (m *MockDeviceTokenRepository) ActiveTokens(ctx context.Context, userID kernel.UUID) ([]string, error) {
	args := m.Called(ctx, userID)
	tokens, _ := args.Get(0).([]string)
	return tokens, args.Error(1)
}

func (m *MockDeviceTokenRepository) Deactivate(ctx context.Context, tokens []string) error {
	return m.Called(ctx, tokens).Error(0)
}

func (m *MockDeviceTokenRepository) PurgeInactive(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW records the transaction calls; repositories are plain fields so
// that each test only wires the ones its handler touches.
type MockUoW struct {
	mock.Mock

	orders      *MockOrderRepository
	carts       *MockCartRepository
	catalog     *MockCatalogRepository
	users       *MockUserRepository
	checkouts   *MockCheckoutRepository
	assignments *MockAssignmentRepository
	tracking    *MockTrackingRepository
	reviews     *MockReviewRepository
	outbox      *MockOutboxRepository
	tokens      *MockDeviceTokenRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:      new(MockOrderRepository),
		carts:       new(MockCartRepository),
		catalog:     new(MockCatalogRepository),
		users:       new(MockUserRepository),
		checkouts:   new(MockCheckoutRepository),
		assignments: new(MockAssignmentRepository),
		tracking:    new(MockTrackingRepository),
		reviews:     new(MockReviewRepository),
		outbox:      new(MockOutboxRepository),
		tokens:      new(MockDeviceTokenRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository { return m.orders }
func (m *MockUoW) CartRepository() ports.CartRepository { return m.carts }
func (m *MockUoW) CatalogRepository() ports.CatalogRepository { return m.catalog }
func (m *MockUoW) UserRepository() ports.UserRepository { return m.users }
func (m *MockUoW) CheckoutRepository() ports.CheckoutRepository { return m.checkouts }
func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository { return m.assignments }
func (m *MockUoW) TrackingRepository() ports.TrackingRepository { return m.tracking }
func (m *MockUoW) ReviewRepository() ports.ReviewRepository { return m.reviews }
func (m *MockUoW) OutboxRepository() ports.OutboxRepository { return m.outbox }
func (m *MockUoW) DeviceTokenRepository() ports.DeviceTokenRepository { return m.tokens }

// expectTx registers Begin, Commit and the deferred Rollback in order.
func (m *MockUoW) expectTx(ctx context.Context) {
	mock.InOrder(
		m.On("Begin", ctx).Return(nil).Once(),
		m.On("Commit", ctx).Return(nil).Once(),
		m.On("Rollback", ctx).Return(nil).Once(),
	)
}

// expectAbortedTx registers Begin and Rollback without Commit.
func (m *MockUoW) expectAbortedTx(ctx context.Context) {
	mock.InOrder(
		m.On("Begin", ctx).Return(nil).Once(),
		m.On("Rollback", ctx).Return(nil).Once(),
	)
}

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.carts.AssertExpectations(t)
	m.catalog.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.checkouts.AssertExpectations(t)
	m.assignments.AssertExpectations(t)
	m.tracking.AssertExpectations(t)
	m.reviews.AssertExpectations(t)
	m.outbox.AssertExpectations(t)
	m.tokens.AssertExpectations(t)
}

// uowFactory hands out the same unit of work on every Create.
type uowFactory[T any] struct{ uow T }

func (f uowFactory[T]) Create() T { return f.uow }

func orderFactory(u *MockUoW) commands.OrderUoWFactory {
	return uowFactory[commands.OrderUoW]{uow: u}
}

func cartFactory(u *MockUoW) commands.CartUoWFactory {
	return uowFactory[commands.CartUoW]{uow: u}
}

func checkoutFactory(u *MockUoW) commands.CheckoutUoWFactory {
	return uowFactory[commands.CheckoutUoW]{uow: u}
}

func statusFactory(u *MockUoW) commands.StatusUoWFactory {
	return uowFactory[commands.StatusUoW]{uow: u}
}

func paymentFactory(u *MockUoW) commands.PaymentUoWFactory {
	return uowFactory[commands.PaymentUoW]{uow: u}
}

func trackingFactory(u *MockUoW) commands.TrackingUoWFactory {
	return uowFactory[commands.TrackingUoW]{uow: u}
}

func reviewFactory(u *MockUoW) commands.ReviewUoWFactory {
	return uowFactory[commands.ReviewUoW]{uow: u}
}

func outboxFactory(u *MockUoW) commands.OutboxUoWFactory {
	return uowFactory[commands.OutboxUoW]{uow: u}
}

func deviceTokenFactory(u *MockUoW) commands.DeviceTokenUoWFactory {
	return uowFactory[commands.DeviceTokenUoW]{uow: u}
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Dispatch(ctx context.Context, o *order.Order, t order.Transition, effects []services.Effect) {
	m.Called(ctx, o, t, effects)
}

func (m *MockDispatcher) ReadyForPickup(ctx context.Context, o *order.Order, producerID kernel.UUID, message string) {
	m.Called(ctx, o, producerID, message)
}

type MockAuthorizer struct{ mock.Mock }

func (m *MockAuthorizer) ProcessPayment(
	ctx context.Context,
	orderID kernel.UUID,
	amount decimal.Decimal,
	method string,
) (ports.PaymentResult, error) {
	args := m.Called(ctx, orderID, amount, method)
	return args.Get(0).(ports.PaymentResult), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	return m.Called(ctx, topic, key, payload).Error(0)
}

func mustActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func actorWithID(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

// storedOrder restores an order of buyer with a single line sold by producer.
func storedOrder(t *testing.T, status order.Status, buyer, producer kernel.UUID) *order.Order {
	t.Helper()
	item := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), producer, 2,
		decimal.RequireFromString("5.99"), decimal.RequireFromString("11.98"), "")
	now := time.Now().UTC()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:         kernel.NewUUID(),
		UserID:     buyer,
		Status:     status,
		TotalPrice: decimal.RequireFromString("11.98"),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, []*order.Item{item})
	require.NoError(t, err)
	return o
}
