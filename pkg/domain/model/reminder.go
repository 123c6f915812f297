package model

import (
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Reminder is a scheduled notification. A reminder is created active;
// each firing either advances TriggerAt (recurring schedules) or
// deactivates it (once).
type Reminder struct {
	ID                   types.ReminderID
	UserID               types.UserID
	Title                string
	Body                 string
	Schedule             types.ScheduleType
	TriggerAt            time.Time
	IsActive             bool
	SourceConversationID types.ConversationID
	CreatedAt            time.Time
}

// Validate checks the fields required to create a reminder
func (r *Reminder) Validate() error {
	if r.UserID == "" {
		return goerr.New("reminder user ID is required")
	}
	if r.Title == "" {
		return goerr.New("reminder title is required")
	}
	if !r.Schedule.IsValid() {
		return goerr.New("invalid schedule type", goerr.V("schedule", r.Schedule))
	}
	if r.TriggerAt.IsZero() {
		return goerr.New("reminder trigger time is required")
	}
	return nil
}

// Fire applies one firing transition. Recurring schedules advance
// TriggerAt anchored at the previous trigger time, so the time of day is
// preserved even when the due check ran late. A once reminder is
// deactivated and its TriggerAt left unchanged.
func (r *Reminder) Fire() {
	switch r.Schedule {
	case types.ScheduleDaily:
		r.TriggerAt = r.TriggerAt.Add(24 * time.Hour)
	case types.ScheduleWeekly:
		r.TriggerAt = r.TriggerAt.Add(7 * 24 * time.Hour)
	case types.ScheduleYearly:
		r.TriggerAt = nextYear(r.TriggerAt)
	default:
		r.IsActive = false
	}
}

// ReminderUpdate holds a partial reminder mutation. Nil fields are left
// untouched.
type ReminderUpdate struct {
	Title     *string
	Body      *string
	Schedule  *types.ScheduleType
	TriggerAt *time.Time
	IsActive  *bool
}

// Apply overlays the non-nil fields onto the reminder
func (u ReminderUpdate) Apply(r *Reminder) {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.Body != nil {
		r.Body = *u.Body
	}
	if u.Schedule != nil {
		r.Schedule = *u.Schedule
	}
	if u.TriggerAt != nil {
		r.TriggerAt = *u.TriggerAt
	}
	if u.IsActive != nil {
		r.IsActive = *u.IsActive
	}
}

// nextYear advances the trigger by one calendar year, preserving month,
// day and time of day. A Feb 29 anchor clamps to Feb 28 in non-leap
// years; time.AddDate would normalize it to Mar 1 instead.
func nextYear(t time.Time) time.Time {
	year := t.Year() + 1
	if t.Month() == time.February && t.Day() == 29 && !isLeapYear(year) {
		return time.Date(year, time.February, 28,
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	return time.Date(year, t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
