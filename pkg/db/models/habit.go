package models

import "github.com/angelmondragon/healthtrack-backend/pkg/enums"

type Habit struct {
	Owned
	Smoking  enums.HabitLevel `gorm:"column:smoking;not null" json:"Smoking" validate:"enum"`
	Drinking enums.HabitLevel `gorm:"column:drinking;not null" json:"Drinking" validate:"enum"`
	JunkFood enums.HabitLevel `gorm:"column:junk_food;not null" json:"Junk_food" validate:"enum"`
	Drugs    enums.HabitLevel `gorm:"column:drugs;not null" json:"Drugs" validate:"enum"`
	Coffee   enums.HabitLevel `gorm:"column:coffee;not null" json:"Coffee" validate:"enum"`
	Tea      enums.HabitLevel `gorm:"column:tea;not null" json:"Tea" validate:"enum"`
}

func (Habit) TableName() string {
	return "habits"
}
