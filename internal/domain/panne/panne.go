// Package panne models ad-hoc failure reports against equipment. A panne is
// lighter than a ticket: no assignment or state machine, just reported and
// resolved.
package panne

import (
	"context"
	"fmt"
	"time"
)

type Panne struct {
	id          uint
	equipmentID uint
	reporterID  uint
	description string
	resolved    bool
	reportedAt  time.Time
	resolvedAt  *time.Time
	resolvedBy  *uint
}

func NewPanne(equipmentID, reporterID uint, description string) (*Panne, error) {
	if equipmentID == 0 {
		return nil, fmt.Errorf("equipment ID is required")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	return &Panne{
		equipmentID: equipmentID,
		reporterID:  reporterID,
		description: description,
		reportedAt:  time.Now(),
	}, nil
}

func ReconstructPanne(
	id uint,
	equipmentID uint,
	reporterID uint,
	description string,
	resolved bool,
	reportedAt time.Time,
	resolvedAt *time.Time,
	resolvedBy *uint,
) (*Panne, error) {
	if id == 0 {
		return nil, fmt.Errorf("panne ID cannot be zero")
	}
	if equipmentID == 0 {
		return nil, fmt.Errorf("equipment ID is required")
	}

	return &Panne{
		id:          id,
		equipmentID: equipmentID,
		reporterID:  reporterID,
		description: description,
		resolved:    resolved,
		reportedAt:  reportedAt,
		resolvedAt:  resolvedAt,
		resolvedBy:  resolvedBy,
	}, nil
}

func (p *Panne) ID() uint            { return p.id }
func (p *Panne) EquipmentID() uint   { return p.equipmentID }
func (p *Panne) ReporterID() uint    { return p.reporterID }
func (p *Panne) Description() string { return p.description }
func (p *Panne) IsResolved() bool    { return p.resolved }
func (p *Panne) ReportedAt() time.Time {
	return p.reportedAt
}
func (p *Panne) ResolvedAt() *time.Time { return p.resolvedAt }
func (p *Panne) ResolvedBy() *uint      { return p.resolvedBy }

func (p *Panne) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("panne ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("panne ID cannot be zero")
	}
	p.id = id
	return nil
}

// Resolve is idempotent; the first resolution wins.
func (p *Panne) Resolve(resolvedBy uint) error {
	if resolvedBy == 0 {
		return fmt.Errorf("resolver ID is required")
	}
	if p.resolved {
		return nil
	}

	now := time.Now()
	p.resolved = true
	p.resolvedAt = &now
	p.resolvedBy = &resolvedBy

	return nil
}

type Repository interface {
	Save(ctx context.Context, p *Panne) error
	Update(ctx context.Context, p *Panne) error
	GetByID(ctx context.Context, id uint) (*Panne, error)
	List(ctx context.Context, limit, offset int) ([]*Panne, int64, error)
}
