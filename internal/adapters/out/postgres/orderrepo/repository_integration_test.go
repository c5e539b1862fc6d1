package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository

	buyer    kernel.UUID
	producer kernel.UUID
	cheese   kernel.UUID
	honey    kernel.UUID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)

	var err error
	suite.buyer, err = pgtest.SeedUser(suite.db, "Ana", kernel.RoleConsumer)
	suite.Require().NoError(err)
	suite.producer, err = pgtest.SeedUser(suite.db, "Apiario Sul", kernel.RoleProducer)
	suite.Require().NoError(err)
	suite.cheese, err = pgtest.SeedProduct(suite.db, suite.producer, "Queijo", "5.99", 10)
	suite.Require().NoError(err)
	suite.honey, err = pgtest.SeedProduct(suite.db, suite.producer, "Mel", "18.49", 4)
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	cheese, err := order.NewItem(kernel.NewUUID(), suite.cheese, suite.producer, 3, decimal.RequireFromString("5.99"), "cured")
	suite.Require().NoError(err)
	honey, err := order.NewItem(kernel.NewUUID(), suite.honey, suite.producer, 1, decimal.RequireFromString("18.49"), "")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), suite.buyer, []*order.Item{cheese, honey}, "Rua A, 10", "card", time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) platform() kernel.Actor {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RolePlatform)
	suite.Require().NoError(err)
	return actor
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_StoresItemsInOrder() {
	ctx := suite.T().Context()
	o := suite.newOrder()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, stored.Status())
	suite.Equal("36.46", stored.TotalPrice().String())
	suite.Require().Len(stored.Items(), 2)
	suite.Equal(suite.cheese, stored.Items()[0].ProductID())
	suite.Equal("17.97", stored.Items()[0].TotalPrice().String())
	suite.Equal("cured", stored.Items()[0].Notes())
	suite.Equal(suite.honey, stored.Items()[1].ProductID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateIDIsConflict() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	err := suite.repository.Add(ctx, o)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownOrderIsNotFound() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByItem() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.GetByItem(ctx, o.Items()[1].ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), stored.ID())

	_, err = suite.repository.GetByItem(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_WritesStatusAndHistory() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	_, err = stored.ChangeStatus(suite.platform(), order.Processing, "paid", time.Now().UTC())
	suite.Require().NoError(err)
	_, err = stored.ChangeStatus(suite.platform(), order.Shipped, "", time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.UpdateStatus(ctx, stored, order.Pending))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, reloaded.Status())
	suite.NotEmpty(reloaded.TrackingCode())

	var history []orderrepo.StatusHistoryDTO
	suite.Require().NoError(suite.db.Where("order_id = ?", o.ID().Bytes()).Order("created_at").Find(&history).Error)
	suite.Require().Len(history, 2)
	suite.Equal("processing", history[0].Status)
	suite.Equal("pending", history[0].PreviousStatus)
	suite.Equal("paid", history[0].Notes)
	suite.Equal("shipped", history[1].Status)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_StalePreviousIsVersionInvalid() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	_, err = stored.ChangeStatus(suite.platform(), order.Canceled, "", time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repository.UpdateStatus(ctx, stored, order.Processing)

	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, reloaded.Status())
}

// Two writers move the same pending order to processing at once. The row lock
// makes the loser observe processing and fail the transition.
func (suite *OrderRepositoryIntegrationTestSuite) TestConcurrentTransition_ExactlyOneWins() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	const writers = 2
	results := make([]error, writers)
	start := make(chan struct{})
	var wg sync.WaitGroup

	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = suite.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				repo := orderrepo.NewGormOrderRepository(tx)
				locked, err := repo.GetForUpdate(ctx, o.ID())
				if err != nil {
					return err
				}
				previous := locked.Status()
				if _, err := locked.ChangeStatus(suite.platform(), order.Processing, "", time.Now().UTC()); err != nil {
					return err
				}
				return repo.UpdateStatus(ctx, locked, previous)
			})
		}()
	}
	close(start)
	wg.Wait()

	var succeeded int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, errs.ErrInvalidStateTransition)
	}
	suite.Equal(1, succeeded)

	var history int64
	suite.Require().NoError(suite.db.Model(&orderrepo.StatusHistoryDTO{}).Where("order_id = ?", o.ID().Bytes()).Count(&history).Error)
	suite.EqualValues(1, history)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestMarkPaid_SecondSettlementIsRejected() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	now := time.Now().UTC()
	suite.Require().NoError(first.MarkPaid(now))
	suite.Require().NoError(second.MarkPaid(now))

	suite.Require().NoError(suite.repository.MarkPaid(ctx, first))
	suite.Require().ErrorIs(suite.repository.MarkPaid(ctx, second), order.ErrOrderAlreadyPaid)

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsPaid())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestMarkPaid_UnpaidAggregateIsRequired() {
	ctx := suite.T().Context()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().ErrorIs(suite.repository.MarkPaid(ctx, o), errs.ErrValueIsRequired)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
