package models

type MedicalDetail struct {
	Owned
	Condition string `gorm:"column:condition;not null" json:"Condition" validate:"required,max=500"`
	Height    int    `gorm:"column:height;not null" json:"Height" validate:"required,gt=0"`
	Weight    int    `gorm:"column:weight;not null" json:"Weight" validate:"required,gt=0"`
	Age       int    `gorm:"column:age;not null" json:"Age" validate:"required,gt=0,lt=200"`
	Treatment string `gorm:"column:treatment;not null" json:"Treatment" validate:"required,max=500"`
	Tablet    string `gorm:"column:tablet;not null" json:"Tablet" validate:"required,max=200"`
}

func (MedicalDetail) TableName() string {
	return "medical_details"
}
