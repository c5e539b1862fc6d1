// Package reviewrepo persists product reviews.
package reviewrepo

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewDTO allows one review per user and order item.
type ReviewDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_item"`
	OrderItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_item"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating      int       `gorm:"not null"`
	Comment     string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

// GormReviewRepository implements ports.ReviewRepository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Add(ctx context.Context, rv *review.Review) error {
	dto := ReviewDTO{
		ID:          rv.ID().Bytes(),
		UserID:      rv.UserID().Bytes(),
		OrderItemID: rv.OrderItemID().Bytes(),
		ProductID:   rv.ProductID().Bytes(),
		Rating:      rv.Rating(),
		Comment:     rv.Comment(),
		CreatedAt:   rv.CreatedAt(),
	}
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "review")
}

func (r *GormReviewRepository) ExistsForOrderItem(ctx context.Context, userID, orderItemID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("user_id = ? AND order_item_id = ?", userID.Bytes(), orderItemID.Bytes()).
		Count(&count).Error
	return count > 0, err
}
