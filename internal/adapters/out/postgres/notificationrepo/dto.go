// Package notificationrepo persists notifications and the push tokens of
// user devices.
package notificationrepo

import (
	"time"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	OrderID   uuid.UUID         `gorm:"type:uuid;not null;index:idx_notifications_order_type"`
	Type      string            `gorm:"type:varchar(32);not null;index:idx_notifications_order_type"`
	Title     string            `gorm:"not null"`
	Body      string            `gorm:"type:text"`
	Data      map[string]string `gorm:"serializer:json;type:jsonb"`
	Read      bool              `gorm:"not null;default:false"`
	SentAt    *time.Time
	CreatedAt time.Time `gorm:"not null"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

// DeviceTokenDTO is a push token. A token belongs to the last user that
// registered it.
type DeviceTokenDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Token         string     `gorm:"uniqueIndex;not null"`
	Platform      string     `gorm:"type:varchar(16);not null"`
	Active        bool       `gorm:"not null;default:true"`
	DeactivatedAt *time.Time `gorm:"index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

func (DeviceTokenDTO) TableName() string {
	return "device_tokens"
}
