package dto

import (
	"time"

	"gmao/internal/domain/panne"
	"gmao/internal/shared/mapper"
)

type PanneDTO struct {
	ID          uint       `json:"id"`
	EquipmentID uint       `json:"equipment_id"`
	ReporterID  uint       `json:"reporter_id"`
	Description string     `json:"description"`
	Resolved    bool       `json:"resolved"`
	ReportedAt  time.Time  `json:"reported_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy  *uint      `json:"resolved_by,omitempty"`
}

func FromEntity(p *panne.Panne) *PanneDTO {
	return &PanneDTO{
		ID:          p.ID(),
		EquipmentID: p.EquipmentID(),
		ReporterID:  p.ReporterID(),
		Description: p.Description(),
		Resolved:    p.IsResolved(),
		ReportedAt:  p.ReportedAt(),
		ResolvedAt:  p.ResolvedAt(),
		ResolvedBy:  p.ResolvedBy(),
	}
}

func FromEntities(pannes []*panne.Panne) []*PanneDTO {
	return mapper.List(pannes, FromEntity)
}
