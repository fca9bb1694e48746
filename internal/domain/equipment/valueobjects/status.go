package valueobjects

import "fmt"

// EquipmentStatus is derived from the open-ticket state of the equipment once
// a ticket exists; it is not independently authoritative.
type EquipmentStatus string

const (
	StatusActif         EquipmentStatus = "actif"
	StatusEnMaintenance EquipmentStatus = "en_maintenance"
	StatusHorsService   EquipmentStatus = "hors_service"
)

var validEquipmentStatuses = map[EquipmentStatus]bool{
	StatusActif:         true,
	StatusEnMaintenance: true,
	StatusHorsService:   true,
}

func (s EquipmentStatus) String() string {
	return string(s)
}

func (s EquipmentStatus) IsValid() bool {
	return validEquipmentStatuses[s]
}

func (s EquipmentStatus) IsActif() bool {
	return s == StatusActif
}

func (s EquipmentStatus) IsEnMaintenance() bool {
	return s == StatusEnMaintenance
}

func (s EquipmentStatus) IsHorsService() bool {
	return s == StatusHorsService
}

func NewEquipmentStatus(s string) (EquipmentStatus, error) {
	es := EquipmentStatus(s)
	if !es.IsValid() {
		return "", fmt.Errorf("invalid equipment status: %s", s)
	}
	return es, nil
}
