package enums

import "testing"

func TestIntakeTime(t *testing.T) {
	if !IntakeTimeBeforeFood.IsValid() || !IntakeTimeAfterFood.IsValid() {
		t.Fatal("expected both intake times to be valid")
	}
	if IntakeTime("With Food").IsValid() {
		t.Fatal("unexpected intake time accepted")
	}
	if IntakeTime("before food").IsValid() {
		t.Fatal("intake time matching is case sensitive")
	}
	if IntakeTime("").IsValid() {
		t.Fatal("expected empty intake time to fail")
	}
}

func TestFrequency(t *testing.T) {
	for _, raw := range []string{"Daily", "Weekly", "Monthly", "Yearly"} {
		if !Frequency(raw).IsValid() {
			t.Fatalf("%q should be valid", raw)
		}
	}
	if Frequency("Hourly").IsValid() {
		t.Fatal("hourly is not a supported frequency")
	}
}

func TestReminderNeeded(t *testing.T) {
	if !DefaultReminderNeeded.IsValid() || !ReminderNeededNo.IsValid() {
		t.Fatal("expected reminder needed values to be valid")
	}
	if ReminderNeeded("Maybe").IsValid() {
		t.Fatal("unexpected reminder needed accepted")
	}
}

func TestHabitLevel(t *testing.T) {
	if DefaultHabitLevel != HabitLevelNo {
		t.Fatalf("unexpected default %q", DefaultHabitLevel)
	}
	if HabitLevel("Sometimes").IsValid() {
		t.Fatal("expected invalid habit level")
	}
	if !HabitLevelRarely.IsValid() {
		t.Fatal("rarely should be valid")
	}
}

func TestGender(t *testing.T) {
	if !GenderFemale.IsValid() || !GenderMale.IsValid() {
		t.Fatal("expected genders to be valid")
	}
	if Gender("").IsValid() {
		t.Fatal("empty gender must be invalid")
	}
}
