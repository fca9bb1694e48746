package dto

import (
	"time"

	"gmao/internal/domain/ticket"
	"gmao/internal/shared/mapper"
)

type TicketDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CategoryID  uint       `json:"category_id"`
	EquipmentID uint       `json:"equipment_id"`
	CreatorID   uint       `json:"creator_id"`
	AssigneeID  *uint      `json:"assignee_id,omitempty"`
	Comment     string     `json:"comment,omitempty"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromEntity(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		CategoryID:  t.CategoryID(),
		EquipmentID: t.EquipmentID(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		Comment:     t.Comment(),
		AssignedAt:  t.AssignedAt(),
		ResolvedAt:  t.ResolvedAt(),
		ClosedAt:    t.ClosedAt(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func FromEntities(tickets []*ticket.Ticket) []*TicketDTO {
	return mapper.List(tickets, FromEntity)
}
