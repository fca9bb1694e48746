package mappers

import (
	"gmao/internal/domain/equipment"
	vo "gmao/internal/domain/equipment/valueobjects"
	"gmao/internal/infrastructure/persistence/models"
)

type EquipmentMapper interface {
	ToModel(e *equipment.Equipment) *models.EquipmentModel
	ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error)
}

type EquipmentMapperImpl struct{}

func NewEquipmentMapper() EquipmentMapper {
	return &EquipmentMapperImpl{}
}

func (m *EquipmentMapperImpl) ToModel(e *equipment.Equipment) *models.EquipmentModel {
	return &models.EquipmentModel{
		ID:        e.ID(),
		Serial:    e.Serial(),
		Name:      e.Name(),
		Location:  e.Location(),
		Status:    e.Status().String(),
		HolderID:  e.HolderID(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}

func (m *EquipmentMapperImpl) ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error) {
	return equipment.ReconstructEquipment(
		model.ID,
		model.Serial,
		model.Name,
		model.Location,
		vo.EquipmentStatus(model.Status),
		model.HolderID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
