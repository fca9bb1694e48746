package usecases

import "context"

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type CountUnreadExecutor interface {
	Execute(ctx context.Context, query CountUnreadQuery) (*CountUnreadResult, error)
}

type MarkAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAsReadCommand) error
}

type MarkAllAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAllAsReadCommand) error
}

type DeleteNotificationExecutor interface {
	Execute(ctx context.Context, cmd DeleteNotificationCommand) error
}

type ClearNotificationsExecutor interface {
	Execute(ctx context.Context, cmd ClearNotificationsCommand) (*ClearNotificationsResult, error)
}
