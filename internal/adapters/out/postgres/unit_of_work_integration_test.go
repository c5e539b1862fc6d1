package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory

	buyer     kernel.UUID
	producer  kernel.UUID
	productID kernel.UUID
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	var err error
	suite.buyer, err = pgtest.SeedUser(suite.db, "Ana", kernel.RoleConsumer)
	suite.Require().NoError(err)
	suite.producer, err = pgtest.SeedUser(suite.db, "Sitio Boa Vista", kernel.RoleProducer)
	suite.Require().NoError(err)
	suite.productID, err = pgtest.SeedProduct(suite.db, suite.producer, "Queijo", "5.99", 10)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), suite.productID, suite.producer, 3, decimal.RequireFromString("5.99"), "")
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), suite.buyer, []*order.Item{item}, "Rua A, 10", "pix", time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIndependentInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.CheckoutRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction, "rollback after commit changes nothing")
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderAndCheckoutCommitTogether() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	c, err := checkout.NewCheckout(kernel.NewUUID(), suite.buyer, kernel.NewUUID(), o.ID(),
		checkout.SubtotalOnly(o.TotalPrice()), time.Now().UTC())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.CheckoutRepository().Add(ctx, c))
	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	stored, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("17.97", stored.TotalPrice().String())
	suite.Len(stored.Items(), 1)

	storedCheckout, err := fresh.CheckoutRepository().GetByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(checkout.Initiated, storedCheckout.Status())
	suite.Equal("17.97", storedCheckout.Pricing().Total.String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsEveryRepository() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	c, err := checkout.NewCheckout(kernel.NewUUID(), suite.buyer, kernel.NewUUID(), o.ID(),
		checkout.SubtotalOnly(o.TotalPrice()), time.Now().UTC())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.CheckoutRepository().Add(ctx, c))
	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.CheckoutRepository().GetByOrder(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var items int64
	suite.Require().NoError(suite.db.Table("order_items").Count(&items).Error)
	suite.Zero(items, "no orphan items survive a rolled back order")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedWritesAreIsolated() {
	ctx := suite.T().Context()
	o1 := suite.newOrder()
	o2 := suite.newOrder()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, o1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, o2))

	_, err := uow1.OrderRepository().Get(ctx, o2.ID())
	suite.Require().Error(err)
	_, err = uow2.OrderRepository().Get(ctx, o1.ID())
	suite.Require().Error(err)

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.OrderRepository().Get(ctx, o1.ID())
	suite.Require().NoError(err)
	_, err = fresh.OrderRepository().Get(ctx, o2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransactionWritesImmediately() {
	ctx := suite.T().Context()
	o := suite.newOrder()

	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
