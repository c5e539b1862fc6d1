package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and its items. GORM writes the association in the
// same statement batch; callers provide the transaction.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order")
	}
	return r.addHistory(ctx, aggregate)
}

// UpdateStatus writes the status fields guarded by the previous status.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, previous order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), previous.String()).
		Updates(map[string]any{
			"status":            aggregate.Status().String(),
			"tracking_code":     aggregate.TrackingCode(),
			"ready_for_pickup":  aggregate.ReadyForPickup(),
			"ready_notified_at": aggregate.ReadyNotifiedAt(),
			"updated_at":        aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("order status")
	}

	return r.addHistory(ctx, aggregate)
}

// MarkPaid stores paidAt of a paid aggregate. It fails with
// order.ErrOrderAlreadyPaid when another settlement got there first.
func (r *GormOrderRepository) MarkPaid(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsPaid() {
		return errs.NewValueIsRequiredError("paidAt")
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND paid_at IS NULL", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"paid_at":    aggregate.PaidAt(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderAlreadyPaid
	}
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate locks the order row with SELECT ... FOR UPDATE.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) GetByItem(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var item OrderItemDTO
	err := r.db.WithContext(ctx).Select("order_id").First(&item, "id = ?", itemID.Bytes()).Error
	if err != nil {
		return nil, pgerr.NotFound(err, "order item", itemID.String())
	}

	orderID, err := kernel.UUIDFromBytes(item.OrderID)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, orderID)
}

func (r *GormOrderRepository) get(ctx context.Context, query *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.NotFound(err, "order", id.String())
	}

	items, err := r.items(ctx, dto.ID)
	if err != nil {
		return nil, err
	}
	dto.Items = items

	return toDomain(dto)
}

func (r *GormOrderRepository) items(ctx context.Context, orderID uuid.UUID) ([]OrderItemDTO, error) {
	var items []OrderItemDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("position").
		Find(&items).Error
	return items, err
}

func (r *GormOrderRepository) addHistory(ctx context.Context, aggregate *order.Order) error {
	entries := aggregate.NewHistoryEntries()
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]StatusHistoryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, historyFromDomain(entry))
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
	if err != nil && !errors.Is(err, gorm.ErrEmptySlice) {
		return err
	}
	return nil
}
