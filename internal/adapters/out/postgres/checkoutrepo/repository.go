package checkoutrepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCheckoutRepository implements ports.CheckoutRepository using GORM.
type GormCheckoutRepository struct {
	db *gorm.DB
}

func NewGormCheckoutRepository(db *gorm.DB) *GormCheckoutRepository {
	return &GormCheckoutRepository{db: db}
}

func (r *GormCheckoutRepository) Add(ctx context.Context, aggregate *checkout.Checkout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "checkout")
}

func (r *GormCheckoutRepository) Update(ctx context.Context, aggregate *checkout.Checkout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Select("*").Omit("created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pgerr.NotFound(gorm.ErrRecordNotFound, "checkout", aggregate.ID().String())
	}
	return nil
}

func (r *GormCheckoutRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*checkout.Checkout, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto CheckoutDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, pgerr.NotFound(err, "checkout", orderID.String())
	}
	return toDomain(dto)
}
