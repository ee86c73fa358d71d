package enums

// Frequency is how often a reminder repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"
	FrequencyYearly  Frequency = "Yearly"
)

var validFrequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyMonthly,
	FrequencyYearly,
}

// String implements fmt.Stringer.
func (f Frequency) String() string {
	return string(f)
}

// IsValid reports whether the value is a known Frequency.
func (f Frequency) IsValid() bool {
	for _, candidate := range validFrequencies {
		if candidate == f {
			return true
		}
	}
	return false
}


// ReminderNeeded toggles whether the client should raise a notification.
type ReminderNeeded string

const (
	ReminderNeededYes ReminderNeeded = "Needed"
	ReminderNeededNo  ReminderNeeded = "Not Needed"
)

// DefaultReminderNeeded is applied when the client omits the field.
const DefaultReminderNeeded = ReminderNeededYes

func (r ReminderNeeded) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ReminderNeeded.
func (r ReminderNeeded) IsValid() bool {
	return r == ReminderNeededYes || r == ReminderNeededNo
}
