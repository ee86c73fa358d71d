package models

import "github.com/angelmondragon/healthtrack-backend/pkg/enums"

// Doctor is a physician in the user's care team. PhoneNo is unique per owner.
type Doctor struct {
	Owned
	DoctorName      string       `gorm:"column:doctor_name;not null" json:"DoctorName" validate:"required,max=200"`
	Gender          enums.Gender `gorm:"column:gender;not null" json:"Gender" validate:"required,enum"`
	PhoneNo         string       `gorm:"column:phone_no;not null" json:"PhoneNo" validate:"required,max=32"`
	Specialization  string       `gorm:"column:specialization;not null" json:"Specialization" validate:"required,max=200"`
	WorkingHours    string       `gorm:"column:working_hours;not null" json:"WorkingHours" validate:"required,max=100"`
	HospitalName    string       `gorm:"column:hospital_name;not null" json:"HospitalName" validate:"required,max=200"`
	HospitalAddress string       `gorm:"column:hospital_address;not null" json:"HospitalAddress" validate:"required,max=500"`
}

func (Doctor) TableName() string {
	return "doctors"
}
