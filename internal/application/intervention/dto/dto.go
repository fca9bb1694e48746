package dto

import (
	"time"

	"gmao/internal/domain/intervention"
	"gmao/internal/shared/mapper"
)

type InterventionDTO struct {
	ID           uint      `json:"id"`
	EquipmentID  uint      `json:"equipment_id"`
	TechnicianID uint      `json:"technician_id"`
	PlannerID    uint      `json:"planner_id"`
	Description  string    `json:"description"`
	PlannedFor   time.Time `json:"planned_for"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromEntity(i *intervention.Intervention) *InterventionDTO {
	return &InterventionDTO{
		ID:           i.ID(),
		EquipmentID:  i.EquipmentID(),
		TechnicianID: i.TechnicianID(),
		PlannerID:    i.PlannerID(),
		Description:  i.Description(),
		PlannedFor:   i.PlannedFor(),
		CreatedAt:    i.CreatedAt(),
	}
}

func FromEntities(interventions []*intervention.Intervention) []*InterventionDTO {
	return mapper.List(interventions, FromEntity)
}
