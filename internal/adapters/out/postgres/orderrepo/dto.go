// Package orderrepo persists order aggregates: the order row, its items and
// its append-only status history.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	Status          string          `gorm:"type:varchar(16);index;not null"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	ShippingAddress string          `gorm:"type:text"`
	PaymentMethod   string          `gorm:"type:varchar(32)"`
	TrackingCode    string          `gorm:"type:varchar(32)"`
	ReadyForPickup  bool            `gorm:"not null;default:false"`
	ReadyNotifiedAt *time.Time      `gorm:"type:timestamptz"`
	PaidAt          *time.Time      `gorm:"type:timestamptz"`
	CreatedAt       time.Time       `gorm:"index;not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one frozen line of an order. Position keeps purchase order.
type OrderItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Position   int             `gorm:"not null"`
	ProductID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProducerID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Notes      string
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusHistoryDTO is the order_status_history table.
type StatusHistoryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Status         string    `gorm:"type:varchar(16);not null"`
	PreviousStatus string    `gorm:"type:varchar(16);not null"`
	Notes          string
	ActorID        uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time `gorm:"index;not null"`
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for idx, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    o.ID().Bytes(),
			Position:   idx,
			ProductID:  item.ProductID().Bytes(),
			ProducerID: item.ProducerID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
			Notes:      item.Notes(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		UserID:          o.UserID().Bytes(),
		Status:          o.Status().String(),
		TotalPrice:      o.TotalPrice(),
		ShippingAddress: o.ShippingAddress(),
		PaymentMethod:   o.PaymentMethod(),
		TrackingCode:    o.TrackingCode(),
		ReadyForPickup:  o.ReadyForPickup(),
		ReadyNotifiedAt: o.ReadyNotifiedAt(),
		PaidAt:          o.PaidAt(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		Items:           items,
	}
}

func historyFromDomain(entry *order.HistoryEntry) StatusHistoryDTO {
	return StatusHistoryDTO{
		ID:             entry.ID().Bytes(),
		OrderID:        entry.OrderID().Bytes(),
		Status:         entry.Status().String(),
		PreviousStatus: entry.PreviousStatus().String(),
		Notes:          entry.Notes(),
		ActorID:        entry.ActorID().Bytes(),
		CreatedAt:      entry.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		UserID:          userID,
		Status:          status,
		TotalPrice:      dto.TotalPrice,
		ShippingAddress: dto.ShippingAddress,
		PaymentMethod:   dto.PaymentMethod,
		TrackingCode:    dto.TrackingCode,
		ReadyForPickup:  dto.ReadyForPickup,
		ReadyNotifiedAt: dto.ReadyNotifiedAt,
		PaidAt:          dto.PaidAt,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}, items)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID)
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID)
	if err != nil {
		return nil, err
	}
	producerID, err := kernel.UUIDFromBytes(dto.ProducerID)
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, productID, producerID, dto.Quantity, dto.UnitPrice, dto.TotalPrice, dto.Notes), nil
}
