package models

// Owned carries the primary key and owning user shared by every dependent
// health record. user_id references users(id) with ON DELETE CASCADE.
type Owned struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"column:user_id;not null;index" json:"user_id"`
}

func (o *Owned) GetID() uint {
	return o.ID
}

func (o *Owned) OwnerID() uint {
	return o.UserID
}

// Bind pins the record to its owner and clears any client supplied id.
func (o *Owned) Bind(ownerID uint) {
	o.ID = 0
	o.UserID = ownerID
}
