package equipment

import (
	"fmt"
	"time"

	vo "gmao/internal/domain/equipment/valueobjects"
)

// Equipment is a physical asset identified by its serial number. The serial
// is the natural key exposed to users; the numeric id is a storage detail.
type Equipment struct {
	id        uint
	serial    string
	name      string
	location  string
	status    vo.EquipmentStatus
	holderID  *uint
	createdAt time.Time
	updatedAt time.Time
}

func NewEquipment(serial, name, location string) (*Equipment, error) {
	if len(serial) == 0 {
		return nil, fmt.Errorf("serial number is required")
	}
	if len(serial) > 100 {
		return nil, fmt.Errorf("serial number exceeds maximum length of 100 characters")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()

	return &Equipment{
		serial:    serial,
		name:      name,
		location:  location,
		status:    vo.StatusActif,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructEquipment(
	id uint,
	serial string,
	name string,
	location string,
	status vo.EquipmentStatus,
	holderID *uint,
	createdAt, updatedAt time.Time,
) (*Equipment, error) {
	if id == 0 {
		return nil, fmt.Errorf("equipment ID cannot be zero")
	}
	if len(serial) == 0 {
		return nil, fmt.Errorf("serial number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid equipment status")
	}

	return &Equipment{
		id:        id,
		serial:    serial,
		name:      name,
		location:  location,
		status:    status,
		holderID:  holderID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (e *Equipment) ID() uint {
	return e.id
}

func (e *Equipment) Serial() string {
	return e.serial
}

func (e *Equipment) Name() string {
	return e.name
}

func (e *Equipment) Location() string {
	return e.location
}

func (e *Equipment) Status() vo.EquipmentStatus {
	return e.status
}

func (e *Equipment) HolderID() *uint {
	return e.holderID
}

func (e *Equipment) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Equipment) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Equipment) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("equipment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("equipment ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Equipment) ChangeStatus(newStatus vo.EquipmentStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid equipment status: %s", newStatus)
	}

	if e.status == newStatus {
		return nil
	}

	e.status = newStatus
	e.updatedAt = time.Now()

	return nil
}

// AssignHolder hands the device to a user; zero clears the holder.
func (e *Equipment) AssignHolder(userID uint) {
	if userID == 0 {
		e.holderID = nil
	} else {
		e.holderID = &userID
	}
	e.updatedAt = time.Now()
}
