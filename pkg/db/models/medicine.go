package models

import "github.com/angelmondragon/healthtrack-backend/pkg/enums"

// Medicine is one entry of a user's medication schedule. The four slot
// fields hold the dose count for that part of the day.
type Medicine struct {
	Owned
	MedicineName string           `gorm:"column:medicine_name;not null" json:"MedicineName" validate:"required,max=200"`
	Morning      int              `gorm:"column:morning;not null;default:0" json:"Morning" validate:"gte=0"`
	Afternoon    int              `gorm:"column:afternoon;not null;default:0" json:"Afternoon" validate:"gte=0"`
	Evening      int              `gorm:"column:evening;not null;default:0" json:"Evening" validate:"gte=0"`
	Night        int              `gorm:"column:night;not null;default:0" json:"Night" validate:"gte=0"`
	IntakeTime   enums.IntakeTime `gorm:"column:intake_time;not null" json:"IntakeTime" validate:"required,enum"`
}

func (Medicine) TableName() string {
	return "medicines"
}
