package enums

// HabitLevel grades how often a user engages in a habit.
type HabitLevel string

const (
	HabitLevelFrequently HabitLevel = "Frequently"
	HabitLevelRarely     HabitLevel = "Rarely"
	HabitLevelNo         HabitLevel = "No"
)

// DefaultHabitLevel is stored for any habit the client leaves blank.
const DefaultHabitLevel = HabitLevelNo

var validHabitLevels = []HabitLevel{
	HabitLevelFrequently,
	HabitLevelRarely,
	HabitLevelNo,
}

// String implements fmt.Stringer.
func (h HabitLevel) String() string {
	return string(h)
}

// IsValid reports whether the value is a known HabitLevel.
func (h HabitLevel) IsValid() bool {
	for _, candidate := range validHabitLevels {
		if candidate == h {
			return true
		}
	}
	return false
}
