package records

import (
	"github.com/angelmondragon/healthtrack-backend/pkg/db/models"
	"github.com/angelmondragon/healthtrack-backend/pkg/enums"
)

// Route segments for the six record kinds.
const (
	NameMedicine       = "medicine"
	NameReminders      = "reminders"
	NameHabits         = "habits"
	NameMedicalDetails = "medicaldetails"
	NameDoctor         = "doctor"
	NameFamily         = "family"
)

var (
	MedicineSchema = Schema[models.Medicine]{Name: NameMedicine}

	ReminderSchema = Schema[models.Reminder]{
		Name: NameReminders,
		Defaults: func(r *models.Reminder) {
			if r.ReminderNeeded == "" {
				r.ReminderNeeded = enums.DefaultReminderNeeded
			}
		},
	}

	HabitSchema = Schema[models.Habit]{
		Name: NameHabits,
		Defaults: func(h *models.Habit) {
			for _, level := range []*enums.HabitLevel{&h.Smoking, &h.Drinking, &h.JunkFood, &h.Drugs, &h.Coffee, &h.Tea} {
				if *level == "" {
					*level = enums.DefaultHabitLevel
				}
			}
		},
	}

	MedicalDetailSchema = Schema[models.MedicalDetail]{Name: NameMedicalDetails}

	DoctorSchema = Schema[models.Doctor]{Name: NameDoctor}

	FamilyContactSchema = Schema[models.FamilyContact]{Name: NameFamily}
)
