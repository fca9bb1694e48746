package models

import "time"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	CategoryID  uint   `gorm:"not null;index"`
	EquipmentID uint   `gorm:"not null;index"`
	CreatorID   uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	Comment     string `gorm:"size:500"`
	AssignedAt  *time.Time
	ResolvedAt  *time.Time
	ClosedAt    *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	// No foreign key constraints or associations; relationships are managed
	// by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
