package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	BulkCreate(ctx context.Context, notifications []*Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAsRead(ctx context.Context, id uint) error
	MarkAllAsRead(ctx context.Context, userID uint) error
	Delete(ctx context.Context, id uint) error
	DeleteAllByUserID(ctx context.Context, userID uint) (int64, error)
}
