// Package deliveryrepo persists the agent-to-order delivery assignments.
package deliveryrepo

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentDTO is keyed by order so an order is carried by one agent at most.
type AssignmentDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgentID    uuid.UUID `gorm:"type:uuid;index;not null"`
	AcceptedAt time.Time `gorm:"not null;index"`
}

func (AssignmentDTO) TableName() string {
	return "delivery_assignments"
}

// GormAssignmentRepository implements ports.AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

func (r *GormAssignmentRepository) Add(ctx context.Context, assignment *delivery.Assignment) error {
	dto := AssignmentDTO{
		OrderID:    assignment.OrderID().Bytes(),
		AgentID:    assignment.AgentID().Bytes(),
		AcceptedAt: assignment.AcceptedAt(),
	}
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "delivery assignment")
}

func (r *GormAssignmentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, pgerr.NotFound(err, "delivery assignment", orderID.String())
	}

	agentID, err := kernel.UUIDFromBytes(dto.AgentID)
	if err != nil {
		return nil, err
	}
	return delivery.RestoreAssignment(orderID, agentID, dto.AcceptedAt), nil
}
