package models

import "github.com/angelmondragon/healthtrack-backend/pkg/enums"

type Reminder struct {
	Owned
	Activity       string               `gorm:"column:activity;not null" json:"Activity" validate:"required,max=200"`
	Frequency      enums.Frequency      `gorm:"column:frequency;not null" json:"Frequency" validate:"required,enum"`
	ReminderNeeded enums.ReminderNeeded `gorm:"column:reminder_needed;not null" json:"ReminderNeeded" validate:"enum"`
	ReminderDate   *string              `gorm:"column:reminder_date" json:"ReminderDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ReminderTime   *string              `gorm:"column:reminder_time" json:"ReminderTime,omitempty" validate:"omitempty,datetime=15:04"`
}

func (Reminder) TableName() string {
	return "reminders"
}
