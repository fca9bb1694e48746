package models

type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"size:255"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
