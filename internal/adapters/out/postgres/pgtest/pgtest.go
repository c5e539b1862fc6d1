// Package pgtest starts a throwaway PostgreSQL for integration tests and seeds
// the catalog rows that orders and carts reference.
package pgtest

import (
	"context"
	"strings"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Start runs postgres:15-alpine, connects GORM to it and migrates the schema.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return container, nil, err
	}

	if err := postgres_adapter.Migrate(db); err != nil {
		return container, nil, err
	}
	return container, db, nil
}

// Truncate empties every table.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + strings.Join(postgres_adapter.Tables, ", ") + " CASCADE").Error
}

// SeedUser inserts a user with the given role and returns its id.
func SeedUser(db *gorm.DB, name string, role kernel.Role) (kernel.UUID, error) {
	id := kernel.NewUUID()
	err := db.Create(&catalogrepo.UserDTO{
		ID:        id.Bytes(),
		Name:      name,
		Email:     id.String() + "@example.test",
		Phone:     "+5511999990000",
		Role:      string(role),
		CreatedAt: time.Now().UTC(),
	}).Error
	return id, err
}

// SeedProduct inserts a product of producerID priced at price and returns its id.
func SeedProduct(db *gorm.DB, producerID kernel.UUID, name, price string, stock int) (kernel.UUID, error) {
	id := kernel.NewUUID()
	err := db.Create(&catalogrepo.ProductDTO{
		ID:         id.Bytes(),
		ProducerID: producerID.Bytes(),
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
	}).Error
	return id, err
}
