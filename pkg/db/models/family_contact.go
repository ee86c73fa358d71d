package models

// FamilyContact is an emergency contact. PhoneNo is unique per owner.
type FamilyContact struct {
	Owned
	Name     string `gorm:"column:name;not null" json:"Name" validate:"required,max=200"`
	PhoneNo  string `gorm:"column:phone_no;not null" json:"PhoneNo" validate:"required,max=32"`
	Relation string `gorm:"column:relation;not null" json:"Relation" validate:"required,max=100"`
}

func (FamilyContact) TableName() string {
	return "family_contacts"
}
