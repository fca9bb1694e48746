package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"gmao/internal/domain/notification"
	vo "gmao/internal/domain/notification/valueobjects"
	"gmao/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) (*models.NotificationModel, error)
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) (*models.NotificationModel, error) {
	model := &models.NotificationModel{
		ID:         n.ID(),
		UserID:     n.UserID(),
		Type:       n.Type().String(),
		Title:      n.Title(),
		Message:    n.Message(),
		Priority:   n.Priority(),
		ReadStatus: n.ReadStatus().String(),
		ReadAt:     n.ReadAt(),
		CreatedAt:  n.CreatedAt(),
	}

	if payload := n.Payload(); payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification payload: %w", err)
		}
		model.Payload = datatypes.JSON(raw)
	}

	return model, nil
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	var payload map[string]any
	if len(model.Payload) > 0 {
		if err := json.Unmarshal(model.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification payload: %w", err)
		}
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		vo.NotificationType(model.Type),
		model.Title,
		model.Message,
		payload,
		model.Priority,
		vo.ReadStatus(model.ReadStatus),
		model.ReadAt,
		model.CreatedAt,
	)
}
