package redis_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/redis"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type IdempotencyStoreTestSuite struct {
	suite.Suite
	container testcontainers.Container
	store     *redis.IdempotencyStore
}

func (suite *IdempotencyStoreTestSuite) SetupSuite() {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	suite.container = container
	suite.Require().NoError(err)

	addr, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)
	suite.store, err = redis.NewIdempotencyStore(addr, 2)
	suite.Require().NoError(err)
}

func (suite *IdempotencyStoreTestSuite) TearDownSuite() {
	if suite.store != nil {
		suite.Require().NoError(suite.store.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *IdempotencyStoreTestSuite) TestLookup_UnknownKey() {
	_, found, err := suite.store.Lookup(suite.T().Context(), "never-seen")

	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *IdempotencyStoreTestSuite) TestRemember_FirstValueWins() {
	ctx := suite.T().Context()

	suite.Require().NoError(suite.store.Remember(ctx, "order-key", `{"status":201}`, time.Minute))
	suite.Require().NoError(suite.store.Remember(ctx, "order-key", `{"status":500}`, time.Minute))

	value, found, err := suite.store.Lookup(ctx, "order-key")
	suite.Require().NoError(err)
	suite.True(found)
	suite.JSONEq(`{"status":201}`, value)
}

func (suite *IdempotencyStoreTestSuite) TestRemember_Expires() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.store.Remember(ctx, "short-lived", "x", time.Second))

	suite.Eventually(func() bool {
		_, found, err := suite.store.Lookup(ctx, "short-lived")
		return err == nil && !found
	}, 5*time.Second, 200*time.Millisecond)
}

func TestIdempotencyStoreTestSuite(t *testing.T) {
	suite.Run(t, new(IdempotencyStoreTestSuite))
}
