// Package checkoutrepo persists checkout sessions.
package checkoutrepo

import (
	"time"

	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutDTO is the checkouts table, one row per order.
type CheckoutDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	CartID         uuid.UUID       `gorm:"type:uuid;not null"`
	OrderID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	AddressID      *uuid.UUID      `gorm:"type:uuid"`
	DeliveryMethod string          `gorm:"type:varchar(16)"`
	CouponCode     string          `gorm:"type:varchar(32)"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Discount       decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0"`
	DeliveryFee    decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0"`
	Total          decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Status         string          `gorm:"type:varchar(16);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

func (CheckoutDTO) TableName() string {
	return "checkouts"
}

func fromDomain(c *checkout.Checkout) CheckoutDTO {
	p := c.Pricing()
	dto := CheckoutDTO{
		ID:             c.ID().Bytes(),
		UserID:         c.UserID().Bytes(),
		CartID:         c.CartID().Bytes(),
		OrderID:        c.OrderID().Bytes(),
		DeliveryMethod: c.DeliveryMethod().String(),
		CouponCode:     c.CouponCode(),
		Subtotal:       p.Subtotal,
		Discount:       p.Discount,
		DeliveryFee:    p.DeliveryFee,
		Total:          p.Total,
		Status:         string(c.Status()),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
	if !c.AddressID().IsZero() {
		addressID := c.AddressID().Bytes()
		dto.AddressID = &addressID
	}
	return dto
}

func toDomain(dto CheckoutDTO) (*checkout.Checkout, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.UserID, dto.CartID, dto.OrderID} {
		id, err := kernel.UUIDFromBytes(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	var addressID kernel.UUID
	if dto.AddressID != nil {
		id, err := kernel.UUIDFromBytes(*dto.AddressID)
		if err != nil {
			return nil, err
		}
		addressID = id
	}

	return checkout.RestoreCheckout(checkout.Snapshot{
		ID:             ids[0],
		UserID:         ids[1],
		CartID:         ids[2],
		OrderID:        ids[3],
		AddressID:      addressID,
		DeliveryMethod: checkout.DeliveryMethod(dto.DeliveryMethod),
		CouponCode:     dto.CouponCode,
		Pricing: checkout.Pricing{
			Subtotal:    dto.Subtotal,
			Discount:    dto.Discount,
			DeliveryFee: dto.DeliveryFee,
			Total:       dto.Total,
		},
		Status:    checkout.Status(dto.Status),
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}), nil
}
