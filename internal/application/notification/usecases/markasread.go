package usecases

import (
	"context"

	"gmao/internal/domain/notification"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type MarkAsReadCommand struct {
	NotificationID uint
	RequesterID    uint
}

type MarkAsReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAsReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkAsReadUseCase {
	return &MarkAsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAsReadUseCase) Execute(ctx context.Context, cmd MarkAsReadCommand) error {
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

	// Ownership fails closed: anyone other than the target user is refused,
	// admins included.
	if !n.IsOwnedBy(cmd.RequesterID) {
		return errors.NewForbiddenError("notification does not belong to you")
	}

	if n.ReadStatus().IsRead() {
		return nil
	}

	if err := uc.notificationRepo.MarkAsRead(ctx, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to mark notification as read",
			"notification_id", cmd.NotificationID,
			"error", err)
		return errors.NewInternalError("failed to mark notification as read")
	}

	return nil
}

type MarkAllAsReadCommand struct {
	UserID uint
}

type MarkAllAsReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAllAsReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, cmd MarkAllAsReadCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.notificationRepo.MarkAllAsRead(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to mark all notifications as read",
			"user_id", cmd.UserID,
			"error", err)
		return errors.NewInternalError("failed to mark all notifications as read")
	}

	return nil
}
