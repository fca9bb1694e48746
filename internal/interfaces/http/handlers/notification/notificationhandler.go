package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/notification/usecases"
	"gmao/internal/interfaces/http/middleware"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

type NotificationHandler struct {
	listUC        usecases.ListNotificationsExecutor
	countUnreadUC usecases.CountUnreadExecutor
	markReadUC    usecases.MarkAsReadExecutor
	markAllUC     usecases.MarkAllAsReadExecutor
	deleteUC      usecases.DeleteNotificationExecutor
	clearUC       usecases.ClearNotificationsExecutor
	logger        logger.Interface
}

func NewNotificationHandler(
	listUC usecases.ListNotificationsExecutor,
	countUnreadUC usecases.CountUnreadExecutor,
	markReadUC usecases.MarkAsReadExecutor,
	markAllUC usecases.MarkAllAsReadExecutor,
	deleteUC usecases.DeleteNotificationExecutor,
	clearUC usecases.ClearNotificationsExecutor,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		countUnreadUC: countUnreadUC,
		markReadUC:    markReadUC,
		markAllUC:     markAllUC,
		deleteUC:      deleteUC,
		clearUC:       clearUC,
		logger:        logger.NewLogger(),
	}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID:   userID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, pagination.Page, pagination.PageSize)
}

// CountUnread handles GET /notifications/unread-count
func (h *NotificationHandler) CountUnread(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	result, err := h.countUnreadUC.Execute(c.Request.Context(), usecases.CountUnreadQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkAsRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	notificationID, err := parseNotificationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.GetUserID(c)

	if err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkAsReadCommand{
		NotificationID: notificationID,
		RequesterID:    userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllAsRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.markAllUC.Execute(c.Request.Context(), usecases.MarkAllAsReadCommand{UserID: userID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}

// DeleteNotification handles DELETE /notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	notificationID, err := parseNotificationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.GetUserID(c)

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteNotificationCommand{
		NotificationID: notificationID,
		RequesterID:    userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ClearNotifications handles DELETE /notifications
func (h *NotificationHandler) ClearNotifications(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	result, err := h.clearUC.Execute(c.Request.Context(), usecases.ClearNotificationsCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notifications cleared", result)
}

func parseNotificationID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid notification ID")
	}
	return uint(id), nil
}
