package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gmao/internal/domain/notification"
	vo "gmao/internal/domain/notification/valueobjects"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockNotificationRepository struct {
	mock.Mock
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *mockNotificationRepository) BulkCreate(ctx context.Context, notifications []*notification.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *mockNotificationRepository) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*notification.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockNotificationRepository) DeleteAllByUserID(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func testNotification(t *testing.T, id, userID uint, status vo.ReadStatus) *notification.Notification {
	t.Helper()

	var readAt *time.Time
	if status.IsRead() {
		now := time.Now()
		readAt = &now
	}

	n, err := notification.ReconstructNotification(
		id, userID, vo.TypeTicketAssigne,
		"Ticket assigné", "Le ticket vous a été assigné.",
		nil, "normal", status, readAt, time.Now(),
	)
	require.NoError(t, err)
	return n
}

func TestMarkAsReadUseCase_Execute_Success(t *testing.T) {
	repo := new(mockNotificationRepository)
	repo.On("GetByID", mock.Anything, uint(1)).Return(testNotification(t, 1, 3, vo.ReadStatusUnread), nil)
	repo.On("MarkAsRead", mock.Anything, uint(1)).Return(nil)

	uc := NewMarkAsReadUseCase(repo, newNopLogger())

	err := uc.Execute(context.Background(), MarkAsReadCommand{NotificationID: 1, RequesterID: 3})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestMarkAsReadUseCase_Execute_AlreadyReadIsNoop(t *testing.T) {
	repo := new(mockNotificationRepository)
	repo.On("GetByID", mock.Anything, uint(1)).Return(testNotification(t, 1, 3, vo.ReadStatusRead), nil)

	uc := NewMarkAsReadUseCase(repo, newNopLogger())

	err := uc.Execute(context.Background(), MarkAsReadCommand{NotificationID: 1, RequesterID: 3})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
}

func TestMarkAsReadUseCase_Execute_OwnershipFailsClosed(t *testing.T) {
	repo := new(mockNotificationRepository)
	repo.On("GetByID", mock.Anything, uint(1)).Return(testNotification(t, 1, 3, vo.ReadStatusUnread), nil)

	uc := NewMarkAsReadUseCase(repo, newNopLogger())

	err := uc.Execute(context.Background(), MarkAsReadCommand{NotificationID: 1, RequesterID: 4})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	repo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
}

func TestMarkAsReadUseCase_Execute_NotFound(t *testing.T) {
	repo := new(mockNotificationRepository)
	repo.On("GetByID", mock.Anything, uint(99)).Return(nil, errors.NewNotFoundError("notification not found"))

	uc := NewMarkAsReadUseCase(repo, newNopLogger())

	err := uc.Execute(context.Background(), MarkAsReadCommand{NotificationID: 99, RequesterID: 3})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMarkAllAsReadUseCase_Execute(t *testing.T) {
	repo := new(mockNotificationRepository)
	repo.On("MarkAllAsRead", mock.Anything, uint(3)).Return(nil)

	uc := NewMarkAllAsReadUseCase(repo, newNopLogger())

	require.NoError(t, uc.Execute(context.Background(), MarkAllAsReadCommand{UserID: 3}))
	assert.Error(t, uc.Execute(context.Background(), MarkAllAsReadCommand{}))
}
