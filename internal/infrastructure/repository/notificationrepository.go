package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gmao/internal/domain/notification"
	"gmao/internal/infrastructure/persistence/mappers"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/db"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/mapper"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return n.SetID(model.ID)
}

// BulkCreate inserts one row per recipient in a single statement.
func (r *NotificationRepository) BulkCreate(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	modelList := make([]*models.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		model, err := r.mapper.ToModel(n)
		if err != nil {
			return err
		}
		modelList = append(modelList, model)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&modelList).Error; err != nil {
		return fmt.Errorf("failed to bulk create notifications: %w", err)
	}

	for i, n := range notifications {
		if err := n.SetID(modelList[i].ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.NotificationModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var modelList []*models.NotificationModel
	if err := query.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications, err := mapper.ListWithError(modelList, r.mapper.ToDomain)
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND read_status = ?", userID, "unread").
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkAsRead sets the read columns only when the row is still unread, so the
// first read timestamp is stable under repeated calls.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NotificationModel{}).
		Where("id = ? AND read_status = ?", id, "unread").
		Updates(map[string]any{
			"read_status": "read",
			"read_at":     time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}

	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND read_status = ?", userID, "unread").
		Updates(map[string]any{
			"read_status": "read",
			"read_at":     time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", result.Error)
	}

	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.NotificationModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("notification not found")
	}

	return nil
}

func (r *NotificationRepository) DeleteAllByUserID(ctx context.Context, userID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("user_id = ?", userID).Delete(&models.NotificationModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", result.Error)
	}

	return result.RowsAffected, nil
}
