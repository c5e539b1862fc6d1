// Package outboxrepo stores events written alongside the state change that
// produced them, until the relay publishes them.
package outboxrepo

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OutboxDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventID   uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	Topic     string     `gorm:"type:varchar(128);not null"`
	Key       string     `gorm:"type:varchar(128)"`
	Payload   []byte     `gorm:"type:jsonb;not null"`
	CreatedAt time.Time  `gorm:"not null;index"`
	SentAt    *time.Time `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "outbox_messages"
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, msg ports.OutboxMessage) error {
	dto := OutboxDTO{
		ID:        msg.ID.Bytes(),
		EventID:   msg.EventID.Bytes(),
		Topic:     msg.Topic,
		Key:       msg.Key,
		Payload:   msg.Payload,
		CreatedAt: msg.CreatedAt,
		SentAt:    msg.SentAt,
	}
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "outbox event")
}

// FetchPending must run inside a transaction for the row locks to hold.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	msgs := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID)
		if err != nil {
			return nil, err
		}
		eventID, err := kernel.UUIDFromBytes(dto.EventID)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, ports.OutboxMessage{
			ID:        id,
			EventID:   eventID,
			Topic:     dto.Topic,
			Key:       dto.Key,
			Payload:   dto.Payload,
			CreatedAt: dto.CreatedAt,
		})
	}
	return msgs, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, id kernel.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&OutboxDTO{}).
		Where("id = ?", id.Bytes()).
		Update("sent_at", at).Error
}
