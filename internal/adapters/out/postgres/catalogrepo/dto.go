// Package catalogrepo reads the product catalog and user accounts, and
// applies the stock debit of paid orders.
package catalogrepo

import (
	"time"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserDTO is the users table. Accounts are provisioned by the identity
// service; this service only reads them.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Phone     string
	Role      string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

// ProductDTO is the products table. ProducerID references the producer's user.
type ProductDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProducerID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Stock      int             `gorm:"not null;default:0"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	producerID, err := kernel.UUIDFromBytes(dto.ProducerID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreProduct(id, producerID, dto.Name, dto.Price, dto.Stock), nil
}
