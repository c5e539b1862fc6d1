package notificationrepo

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNotificationRepository implements ports.NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	dto := NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.UserID().Bytes(),
		OrderID:   n.OrderID().Bytes(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Body:      n.Body(),
		Data:      n.Data(),
		CreatedAt: n.CreatedAt(),
	}
	return pgerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "notification")
}

func (r *GormNotificationRepository) DeleteByOrderAndType(
	ctx context.Context,
	orderID kernel.UUID,
	kind notification.Type,
) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("order_id = ? AND type = ?", orderID.Bytes(), string(kind)).
		Delete(&NotificationDTO{})
	return result.RowsAffected, result.Error
}

func (r *GormNotificationRepository) ExistsByOrderAndType(
	ctx context.Context,
	orderID kernel.UUID,
	kind notification.Type,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("order_id = ? AND type = ?", orderID.Bytes(), string(kind)).
		Count(&count).Error
	return count > 0, err
}

// LockOrder takes a transaction-scoped advisory lock keyed by the order id.
// Outside a transaction the lock is released as soon as the statement ends.
func (r *GormNotificationRepository) LockOrder(ctx context.Context, orderID kernel.UUID) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", "notifications:"+orderID.String()).Error
}

// GormDeviceTokenRepository implements ports.DeviceTokenRepository using GORM.
type GormDeviceTokenRepository struct {
	db *gorm.DB
}

func NewGormDeviceTokenRepository(db *gorm.DB) *GormDeviceTokenRepository {
	return &GormDeviceTokenRepository{db: db}
}

// Register moves an existing token to userID and reactivates it.
func (r *GormDeviceTokenRepository) Register(ctx context.Context, userID kernel.UUID, token, platform string) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	dto := DeviceTokenDTO{
		ID:        kernel.NewUUID().Bytes(),
		UserID:    userID.Bytes(),
		Token:     token,
		Platform:  platform,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "token"}},
			DoUpdates: clause.Assignments(map[string]any{
				"user_id":        dto.UserID,
				"platform":       platform,
				"active":         true,
				"deactivated_at": nil,
				"updated_at":     now,
			}),
		}).
		Create(&dto).Error
}

func (r *GormDeviceTokenRepository) ActiveTokens(ctx context.Context, userID kernel.UUID) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).
		Model(&DeviceTokenDTO{}).
		Where("user_id = ? AND active", userID.Bytes()).
		Order("created_at").
		Pluck("token", &tokens).Error
	return tokens, err
}

func (r *GormDeviceTokenRepository) Deactivate(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&DeviceTokenDTO{}).
		Where("token IN ? AND active", tokens).
		Updates(map[string]any{"active": false, "deactivated_at": now, "updated_at": now}).Error
}

func (r *GormDeviceTokenRepository) PurgeInactive(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("NOT active AND deactivated_at < ?", before).
		Delete(&DeviceTokenDTO{})
	return result.RowsAffected, result.Error
}
