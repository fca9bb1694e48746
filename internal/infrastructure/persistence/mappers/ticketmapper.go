package mappers

import (
	"gmao/internal/domain/ticket"
	vo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		model.CategoryID,
		model.EquipmentID,
		model.CreatorID,
		model.AssigneeID,
		model.Comment,
		model.AssignedAt,
		model.ResolvedAt,
		model.ClosedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
