package records

import (
	"time"

	"github.com/angelmondragon/healthtrack-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Services holds one service per record kind.
type Services struct {
	Medicines      *Service[models.Medicine, *models.Medicine]
	Reminders      *Service[models.Reminder, *models.Reminder]
	Habits         *Service[models.Habit, *models.Habit]
	MedicalDetails *Service[models.MedicalDetail, *models.MedicalDetail]
	Doctors        *Service[models.Doctor, *models.Doctor]
	FamilyContacts *Service[models.FamilyContact, *models.FamilyContact]
}

// NewServices builds every record service over the shared connection.
func NewServices(db *gorm.DB, timeout time.Duration) *Services {
	return &Services{
		Medicines:      build(db, timeout, MedicineSchema),
		Reminders:      build(db, timeout, ReminderSchema),
		Habits:         build(db, timeout, HabitSchema),
		MedicalDetails: build(db, timeout, MedicalDetailSchema),
		Doctors:        build(db, timeout, DoctorSchema),
		FamilyContacts: build(db, timeout, FamilyContactSchema),
	}
}

func build[T any, P Model[T]](db *gorm.DB, timeout time.Duration, schema Schema[T]) *Service[T, P] {
	return NewService[T, P](schema, NewRepository[T, P](db, timeout, schema.Name))
}
