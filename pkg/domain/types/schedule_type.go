package types

import "fmt"

// ScheduleType represents the recurrence rule of a reminder
type ScheduleType string

const (
	ScheduleOnce   ScheduleType = "once"
	ScheduleDaily  ScheduleType = "daily"
	ScheduleWeekly ScheduleType = "weekly"
	ScheduleYearly ScheduleType = "yearly"
)

// AllScheduleTypes returns all valid schedule types
func AllScheduleTypes() []ScheduleType {
	return []ScheduleType{
		ScheduleOnce,
		ScheduleDaily,
		ScheduleWeekly,
		ScheduleYearly,
	}
}

// IsValid checks if the schedule type is valid
func (s ScheduleType) IsValid() bool {
	switch s {
	case ScheduleOnce,
		ScheduleDaily,
		ScheduleWeekly,
		ScheduleYearly:
		return true
	default:
		return false
	}
}

// String returns the string representation of the schedule type
func (s ScheduleType) String() string {
	return string(s)
}

// ParseScheduleType parses a string into a ScheduleType
func ParseScheduleType(s string) (ScheduleType, error) {
	st := ScheduleType(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid schedule type: %s", s)
	}
	return st, nil
}
