package constant

// ReminderType is the part of the day a reminder belongs to.
type ReminderType string

const (
	// ReminderMorning is a morning dose.
	ReminderMorning ReminderType = "Morning"
	// ReminderAfternoon is an afternoon dose.
	ReminderAfternoon ReminderType = "Afternoon"
	// ReminderNight is an evening or bedtime dose.
	ReminderNight ReminderType = "Night"
	// ReminderCustom is any other time of day.
	ReminderCustom ReminderType = "Custom"
)

// Valid reports whether t is one of the known reminder types.
func (t ReminderType) Valid() bool {
	switch t {
	case ReminderMorning, ReminderAfternoon, ReminderNight, ReminderCustom:
		return true
	}
	return false
}

func (t ReminderType) String() string {
	return string(t)
}

// LowStockThreshold is the remaining/total ratio at or below which a refill item is low.
const LowStockThreshold = 0.2
