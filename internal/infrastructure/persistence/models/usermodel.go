package models

import "time"

type UserModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"size:255;not null"`
	Email              string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash       string `gorm:"size:255;not null"`
	Role               int    `gorm:"not null;index"`
	Active             bool   `gorm:"not null;default:true"`
	PasswordChangedAt  time.Time
	MustChangePassword bool `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (UserModel) TableName() string {
	return "users"
}
