package reviewrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/reviewrepo"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// Reviews and delivery assignments share one container: both are
// uniqueness-guarded inserts translated into conflicts.
type UniqueInsertIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *UniqueInsertIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *UniqueInsertIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *UniqueInsertIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UniqueInsertIntegrationTestSuite) TestReview_OnePerUserAndItem() {
	ctx := suite.T().Context()
	repo := reviewrepo.NewGormReviewRepository(suite.db)
	user, item, product := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	first, err := review.NewReview(user, item, product, 5, "great", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, first))

	exists, err := repo.ExistsForOrderItem(ctx, user, item)
	suite.Require().NoError(err)
	suite.True(exists)

	again, err := review.NewReview(user, item, product, 1, "changed my mind", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(repo.Add(ctx, again), errs.ErrConflict)

	other, err := review.NewReview(kernel.NewUUID(), item, product, 4, "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, other), "another user may review the same item")
}

func (suite *UniqueInsertIntegrationTestSuite) TestAssignment_OneAgentPerOrder() {
	ctx := suite.T().Context()
	repo := deliveryrepo.NewGormAssignmentRepository(suite.db)
	orderID, agent := kernel.NewUUID(), kernel.NewUUID()

	first, err := delivery.NewAssignment(orderID, agent, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, first))

	second, err := delivery.NewAssignment(orderID, kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(repo.Add(ctx, second), errs.ErrConflict)

	stored, err := repo.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(stored.IsCarriedBy(agent))

	_, err = repo.GetByOrder(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUniqueInsertIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UniqueInsertIntegrationTestSuite))
}
