package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	vo "gmao/internal/domain/notification/valueobjects"
	"gmao/internal/shared/errors"
)

func TestDeleteNotificationUseCase_Execute_Success(t *testing.T) {
	repo := new(mockNotificationRepository)
	repo.On("GetByID", mock.Anything, uint(1)).Return(testNotification(t, 1, 3, vo.ReadStatusUnread), nil)
	repo.On("Delete", mock.Anything, uint(1)).Return(nil)

	uc := NewDeleteNotificationUseCase(repo, newNopLogger())

	require.NoError(t, uc.Execute(context.Background(), DeleteNotificationCommand{NotificationID: 1, RequesterID: 3}))
	repo.AssertExpectations(t)
}

func TestDeleteNotificationUseCase_Execute_OwnershipFailsClosed(t *testing.T) {
	repo := new(mockNotificationRepository)
	repo.On("GetByID", mock.Anything, uint(1)).Return(testNotification(t, 1, 3, vo.ReadStatusUnread), nil)

	uc := NewDeleteNotificationUseCase(repo, newNopLogger())

	err := uc.Execute(context.Background(), DeleteNotificationCommand{NotificationID: 1, RequesterID: 9})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestClearNotificationsUseCase_Execute(t *testing.T) {
	repo := new(mockNotificationRepository)
	repo.On("DeleteAllByUserID", mock.Anything, uint(3)).Return(int64(4), nil)

	uc := NewClearNotificationsUseCase(repo, newNopLogger())

	result, err := uc.Execute(context.Background(), ClearNotificationsCommand{UserID: 3})

	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Deleted)
}
