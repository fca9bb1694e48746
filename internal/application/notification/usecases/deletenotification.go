package usecases

import (
	"context"

	"gmao/internal/domain/notification"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type DeleteNotificationCommand struct {
	NotificationID uint
	RequesterID    uint
}

type DeleteNotificationUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewDeleteNotificationUseCase(notificationRepo notification.Repository, logger logger.Interface) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, cmd DeleteNotificationCommand) error {
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}
	if cmd.RequesterID == 0 {
		return errors.NewValidationError("requester ID is required")
	}

	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return errors.NewNotFoundError("notification not found")
	}

	if !n.IsOwnedBy(cmd.RequesterID) {
		return errors.NewForbiddenError("notification does not belong to you")
	}

	if err := uc.notificationRepo.Delete(ctx, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to delete notification",
			"notification_id", cmd.NotificationID,
			"error", err)
		return errors.NewInternalError("failed to delete notification")
	}

	return nil
}

type ClearNotificationsCommand struct {
	UserID uint
}

type ClearNotificationsResult struct {
	Deleted int64 `json:"deleted"`
}

type ClearNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewClearNotificationsUseCase(notificationRepo notification.Repository, logger logger.Interface) *ClearNotificationsUseCase {
	return &ClearNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ClearNotificationsUseCase) Execute(ctx context.Context, cmd ClearNotificationsCommand) (*ClearNotificationsResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	deleted, err := uc.notificationRepo.DeleteAllByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to clear notifications", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to clear notifications")
	}

	uc.logger.Infow("notifications cleared", "user_id", cmd.UserID, "deleted", deleted)

	return &ClearNotificationsResult{Deleted: deleted}, nil
}
