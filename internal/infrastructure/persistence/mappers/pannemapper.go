package mappers

import (
	"gmao/internal/domain/category"
	"gmao/internal/domain/intervention"
	"gmao/internal/domain/panne"
	"gmao/internal/infrastructure/persistence/models"
)

type PanneMapper struct{}

func NewPanneMapper() *PanneMapper {
	return &PanneMapper{}
}

func (m *PanneMapper) ToModel(p *panne.Panne) *models.PanneModel {
	return &models.PanneModel{
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

func (m *PanneMapper) ToDomain(model *models.PanneModel) (*panne.Panne, error) {
	return panne.ReconstructPanne(
		model.ID,
		model.EquipmentID,
		model.ReporterID,
		model.Description,
		model.Resolved,
		model.ReportedAt,
		model.ResolvedAt,
		model.ResolvedBy,
	)
}

type InterventionMapper struct{}

func NewInterventionMapper() *InterventionMapper {
	return &InterventionMapper{}
}

func (m *InterventionMapper) ToModel(i *intervention.Intervention) *models.InterventionModel {
	return &models.InterventionModel{
		ID:           i.ID(),
		EquipmentID:  i.EquipmentID(),
		TechnicianID: i.TechnicianID(),
		PlannerID:    i.PlannerID(),
		Description:  i.Description(),
		PlannedFor:   i.PlannedFor(),
		CreatedAt:    i.CreatedAt(),
	}
}

func (m *InterventionMapper) ToDomain(model *models.InterventionModel) (*intervention.Intervention, error) {
	return intervention.ReconstructIntervention(
		model.ID,
		model.EquipmentID,
		model.TechnicianID,
		model.PlannerID,
		model.Description,
		model.PlannedFor,
		model.CreatedAt,
	)
}

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (m *CategoryMapper) ToDomain(model *models.CategoryModel) (*category.Category, error) {
	return category.ReconstructCategory(model.ID, model.Name, model.Description)
}
