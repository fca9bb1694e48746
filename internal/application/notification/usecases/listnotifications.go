package usecases

import (
	"context"

	"gmao/internal/application/notification/dto"
	"gmao/internal/domain/notification"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type ListNotificationsQuery struct {
	UserID   uint
	Page     int
	PageSize int
}

type ListNotificationsResult struct {
	Notifications []*dto.NotificationDTO
	Total         int64
}

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	offset := (query.Page - 1) * query.PageSize
	notifications, total, err := uc.notificationRepo.ListByUserID(ctx, query.UserID, query.PageSize, offset)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	return &ListNotificationsResult{
		Notifications: dto.FromEntities(notifications),
		Total:         total,
	}, nil
}

type CountUnreadQuery struct {
	UserID uint
}

type CountUnreadResult struct {
	Count int64 `json:"count"`
}

type CountUnreadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewCountUnreadUseCase(notificationRepo notification.Repository, logger logger.Interface) *CountUnreadUseCase {
	return &CountUnreadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *CountUnreadUseCase) Execute(ctx context.Context, query CountUnreadQuery) (*CountUnreadResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	count, err := uc.notificationRepo.CountUnread(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to count unread notifications")
	}

	return &CountUnreadResult{Count: count}, nil
}
