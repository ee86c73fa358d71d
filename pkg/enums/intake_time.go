package enums

// IntakeTime records whether a medicine is taken before or after a meal.
type IntakeTime string

const (
	IntakeTimeBeforeFood IntakeTime = "Before Food"
	IntakeTimeAfterFood  IntakeTime = "After Food"
)

var validIntakeTimes = []IntakeTime{
	IntakeTimeBeforeFood,
	IntakeTimeAfterFood,
}

// String implements fmt.Stringer.
func (i IntakeTime) String() string {
	return string(i)
}

// IsValid reports whether the value is a known IntakeTime.
func (i IntakeTime) IsValid() bool {
	for _, candidate := range validIntakeTimes {
		if candidate == i {
			return true
		}
	}
	return false
}
