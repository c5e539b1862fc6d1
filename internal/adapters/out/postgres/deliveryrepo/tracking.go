package deliveryrepo

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/delivery"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackingDTO is append-only; the latest row of an order is its current position.
type TrackingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index:ix_order_tracking_order_recorded,priority:1"`
	AgentID    uuid.UUID `gorm:"type:uuid;not null"`
	Latitude   float64   `gorm:"not null"`
	Longitude  float64   `gorm:"not null"`
	Status     string    `gorm:"type:varchar(32);not null"`
	RecordedAt time.Time `gorm:"not null;index:ix_order_tracking_order_recorded,priority:2"`
}

func (TrackingDTO) TableName() string {
	return "order_tracking"
}

// GormTrackingRepository implements ports.TrackingRepository using GORM.
type GormTrackingRepository struct {
	db *gorm.DB
}

func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

func (r *GormTrackingRepository) Add(ctx context.Context, point *delivery.TrackingPoint) error {
	dto := TrackingDTO{
		ID:         point.ID().Bytes(),
		OrderID:    point.OrderID().Bytes(),
		AgentID:    point.AgentID().Bytes(),
		Latitude:   float64(point.Location().Latitude()),
		Longitude:  float64(point.Location().Longitude()),
		Status:     point.Status().String(),
		RecordedAt: point.RecordedAt(),
	}
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "tracking point")
}
