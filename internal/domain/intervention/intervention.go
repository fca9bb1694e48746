// Package intervention models planned maintenance work on equipment.
package intervention

import (
	"context"
	"fmt"
	"time"
)

type Intervention struct {
	id           uint
	equipmentID  uint
	technicianID uint
	plannerID    uint
	description  string
	plannedFor   time.Time
	createdAt    time.Time
}

func NewIntervention(
	equipmentID uint,
	technicianID uint,
	plannerID uint,
	description string,
	plannedFor time.Time,
) (*Intervention, error) {
	if equipmentID == 0 {
		return nil, fmt.Errorf("equipment ID is required")
	}
	if technicianID == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}
	if plannerID == 0 {
		return nil, fmt.Errorf("planner ID is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if plannedFor.IsZero() {
		return nil, fmt.Errorf("planned date is required")
	}

	return &Intervention{
		equipmentID:  equipmentID,
		technicianID: technicianID,
		plannerID:    plannerID,
		description:  description,
		plannedFor:   plannedFor,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructIntervention(
	id uint,
	equipmentID uint,
	technicianID uint,
	plannerID uint,
	description string,
	plannedFor time.Time,
	createdAt time.Time,
) (*Intervention, error) {
	if id == 0 {
		return nil, fmt.Errorf("intervention ID cannot be zero")
	}
	if equipmentID == 0 {
		return nil, fmt.Errorf("equipment ID is required")
	}

	return &Intervention{
		id:           id,
		equipmentID:  equipmentID,
		technicianID: technicianID,
		plannerID:    plannerID,
		description:  description,
		plannedFor:   plannedFor,
		createdAt:    createdAt,
	}, nil
}

func (i *Intervention) ID() uint              { return i.id }
func (i *Intervention) EquipmentID() uint     { return i.equipmentID }
func (i *Intervention) TechnicianID() uint    { return i.technicianID }
func (i *Intervention) PlannerID() uint       { return i.plannerID }
func (i *Intervention) Description() string   { return i.description }
func (i *Intervention) PlannedFor() time.Time { return i.plannedFor }
func (i *Intervention) CreatedAt() time.Time  { return i.createdAt }

func (i *Intervention) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("intervention ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("intervention ID cannot be zero")
	}
	i.id = id
	return nil
}

type Repository interface {
	Save(ctx context.Context, i *Intervention) error
	GetByID(ctx context.Context, id uint) (*Intervention, error)
	List(ctx context.Context, limit, offset int) ([]*Intervention, int64, error)
}
