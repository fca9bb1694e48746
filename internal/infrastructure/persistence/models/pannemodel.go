package models

import "time"

type PanneModel struct {
	ID          uint   `gorm:"primaryKey"`
	EquipmentID uint   `gorm:"not null;index"`
	ReporterID  uint   `gorm:"not null;index"`
	Description string `gorm:"type:text;not null"`
	Resolved    bool   `gorm:"not null;default:false;index"`
	ReportedAt  time.Time
	ResolvedAt  *time.Time
	ResolvedBy  *uint
}

func (PanneModel) TableName() string {
	return "pannes"
}

type InterventionModel struct {
	ID           uint   `gorm:"primaryKey"`
	EquipmentID  uint   `gorm:"not null;index"`
	TechnicianID uint   `gorm:"not null;index"`
	PlannerID    uint   `gorm:"not null"`
	Description  string `gorm:"type:text;not null"`
	PlannedFor   time.Time
	CreatedAt    time.Time
}

func (InterventionModel) TableName() string {
	return "interventions"
}
