package dto

import (
	"time"

	"gmao/internal/domain/equipment"
	"gmao/internal/shared/mapper"
)

type EquipmentDTO struct {
	ID        uint      `json:"id"`
	Serial    string    `json:"serial"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Status    string    `json:"status"`
	HolderID  *uint     `json:"holder_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEntity(e *equipment.Equipment) *EquipmentDTO {
	return &EquipmentDTO{
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

func FromEntities(equipments []*equipment.Equipment) []*EquipmentDTO {
	return mapper.List(equipments, FromEntity)
}
