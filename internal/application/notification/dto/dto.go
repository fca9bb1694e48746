package dto

import (
	"time"

	"gmao/internal/domain/notification"
	"gmao/internal/shared/mapper"
)

type NotificationDTO struct {
	ID        uint           `json:"id"`
	UserID    uint           `json:"user_id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Payload   map[string]any `json:"payload,omitempty"`
	Priority  string         `json:"priority"`
	Status    string         `json:"status"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromEntity(n *notification.Notification) *NotificationDTO {
	return &NotificationDTO{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		Payload:   n.Payload(),
		Priority:  n.Priority(),
		Status:    n.ReadStatus().String(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}
}

func FromEntities(notifications []*notification.Notification) []*NotificationDTO {
	return mapper.List(notifications, FromEntity)
}
