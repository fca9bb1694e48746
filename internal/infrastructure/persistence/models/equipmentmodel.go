package models

import "time"

type EquipmentModel struct {
	ID        uint   `gorm:"primaryKey"`
	Serial    string `gorm:"uniqueIndex;size:100;not null"`
	Name      string `gorm:"size:255;not null"`
	Location  string `gorm:"size:255"`
	Status    string `gorm:"size:20;not null;default:'actif';index"`
	HolderID  *uint  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EquipmentModel) TableName() string {
	return "equipments"
}
