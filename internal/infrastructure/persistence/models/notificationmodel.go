package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationModel struct {
	ID         uint           `gorm:"primaryKey"`
	UserID     uint           `gorm:"not null;index:idx_user_read"`
	Type       string         `gorm:"size:50;not null"`
	Title      string         `gorm:"size:255;not null"`
	Message    string         `gorm:"type:text;not null"`
	Payload    datatypes.JSON `gorm:"type:json"`
	Priority   string         `gorm:"size:20;not null;default:'normal'"`
	ReadStatus string         `gorm:"size:20;not null;default:'unread';index:idx_user_read"`
	ReadAt     *time.Time
	CreatedAt  time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ReadStatus == "" {
		n.ReadStatus = "unread"
	}
	if n.Priority == "" {
		n.Priority = "normal"
	}
	return nil
}
