// Package cartrepo persists carts and their line items.
package cartrepo

import (
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO is the carts table. A user owns at most one cart.
type CartDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Total     decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0"`
	UpdatedAt time.Time       `gorm:"not null"`

	Items []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO is one line of a cart, unique per (cart, product).
type CartItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(14,4);not null"`
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(c *cart.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, CartItemDTO{
			ID:        item.ID().Bytes(),
			CartID:    c.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Price:     item.Price(),
		})
	}
	return CartDTO{
		ID:        c.ID().Bytes(),
		UserID:    c.UserID().Bytes(),
		Total:     c.Total(),
		UpdatedAt: c.UpdatedAt(),
		Items:     items,
	}
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID)
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID)
		if itemErr != nil {
			return nil, itemErr
		}
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, cart.RestoreItem(itemID, productID, itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.Price))
	}

	return cart.RestoreCart(id, userID, items, dto.UpdatedAt), nil
}
