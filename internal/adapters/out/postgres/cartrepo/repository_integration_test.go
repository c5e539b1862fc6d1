package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartRepository

	user    kernel.UUID
	cheese  kernel.UUID
	yoghurt kernel.UUID
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = cartrepo.NewGormCartRepository(suite.db)

	var err error
	suite.user, err = pgtest.SeedUser(suite.db, "Ana", kernel.RoleConsumer)
	suite.Require().NoError(err)
	producer, err := pgtest.SeedUser(suite.db, "Laticinios Serra", kernel.RoleProducer)
	suite.Require().NoError(err)
	suite.cheese, err = pgtest.SeedProduct(suite.db, producer, "Queijo", "5.99", 10)
	suite.Require().NoError(err)
	suite.yoghurt, err = pgtest.SeedProduct(suite.db, producer, "Iogurte", "3.50", 10)
	suite.Require().NoError(err)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) TestAdd_SecondCartForUserIsIgnored() {
	ctx := suite.T().Context()
	first, err := cart.NewCart(kernel.NewUUID(), suite.user)
	suite.Require().NoError(err)
	second, err := cart.NewCart(kernel.NewUUID(), suite.user)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	stored, err := suite.repository.GetByUser(ctx, suite.user)
	suite.Require().NoError(err)
	suite.Equal(first.ID(), stored.ID())

	var carts int64
	suite.Require().NoError(suite.db.Model(&cartrepo.CartDTO{}).Count(&carts).Error)
	suite.EqualValues(1, carts)
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_ReplacesItemsAndTotal() {
	ctx := suite.T().Context()
	now := time.Now().UTC()
	c, err := cart.NewCart(kernel.NewUUID(), suite.user)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, c))

	_, err = c.AddProduct(suite.cheese, decimal.RequireFromString("5.99"), 2, now)
	suite.Require().NoError(err)
	yoghurt, err := c.AddProduct(suite.yoghurt, decimal.RequireFromString("3.50"), 1, now)
	suite.Require().NoError(err)
	_, err = c.AddProduct(suite.cheese, decimal.RequireFromString("5.99"), 1, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, c))

	stored, err := suite.repository.GetByUserForUpdate(ctx, suite.user)
	suite.Require().NoError(err)
	suite.Len(stored.Items(), 2, "adding the same product again merges the line")
	suite.Equal("21.47", stored.Total().String())

	suite.Require().NoError(stored.RemoveItem(yoghurt.ID(), now))
	suite.Require().NoError(suite.repository.Save(ctx, stored))

	reloaded, err := suite.repository.GetByUser(ctx, suite.user)
	suite.Require().NoError(err)
	suite.Require().Len(reloaded.Items(), 1)
	suite.Equal(3, reloaded.Items()[0].Quantity())
	suite.Equal("17.97", reloaded.Total().String())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetByUser_NoCartIsNotFound() {
	_, err := suite.repository.GetByUser(suite.T().Context(), suite.user)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
