package model_test

import (
	"testing"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestReminderFire(t *testing.T) {
	base := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)

	t.Run("once deactivates and keeps trigger time", func(t *testing.T) {
		r := &model.Reminder{
			Schedule:  types.ScheduleOnce,
			TriggerAt: base,
			IsActive:  true,
		}
		r.Fire()

		gt.Bool(t, r.IsActive).False()
		gt.Bool(t, r.TriggerAt.Equal(base)).True()
	})

	t.Run("daily advances 24h from previous trigger", func(t *testing.T) {
		r := &model.Reminder{
			Schedule:  types.ScheduleDaily,
			TriggerAt: base,
			IsActive:  true,
		}
		r.Fire()

		gt.Bool(t, r.TriggerAt.Equal(base.Add(24*time.Hour))).True()
		gt.Bool(t, r.IsActive).True()
	})

	t.Run("weekly advances 7 days from previous trigger", func(t *testing.T) {
		r := &model.Reminder{
			Schedule:  types.ScheduleWeekly,
			TriggerAt: base,
			IsActive:  true,
		}
		r.Fire()

		gt.Bool(t, r.TriggerAt.Equal(base.Add(7*24*time.Hour))).True()
		gt.Bool(t, r.IsActive).True()
	})

	t.Run("yearly preserves month, day and time of day", func(t *testing.T) {
		r := &model.Reminder{
			Schedule:  types.ScheduleYearly,
			TriggerAt: base,
			IsActive:  true,
		}
		r.Fire()

		want := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)
		gt.Bool(t, r.TriggerAt.Equal(want)).True()
		gt.Bool(t, r.IsActive).True()
	})

	t.Run("yearly leap-day anchor clamps to Feb 28", func(t *testing.T) {
		r := &model.Reminder{
			Schedule:  types.ScheduleYearly,
			TriggerAt: time.Date(2024, time.February, 29, 8, 30, 0, 0, time.UTC),
			IsActive:  true,
		}
		r.Fire()

		want := time.Date(2025, time.February, 28, 8, 30, 0, 0, time.UTC)
		gt.Bool(t, r.TriggerAt.Equal(want)).True()
	})

	t.Run("yearly leap-day anchor into a leap year keeps Feb 29", func(t *testing.T) {
		r := &model.Reminder{
			Schedule:  types.ScheduleYearly,
			TriggerAt: time.Date(2027, time.February, 28, 8, 30, 0, 0, time.UTC),
			IsActive:  true,
		}
		r.Fire()

		want := time.Date(2028, time.February, 28, 8, 30, 0, 0, time.UTC)
		gt.Bool(t, r.TriggerAt.Equal(want)).True()
	})
}

func TestReminderValidate(t *testing.T) {
	valid := func() *model.Reminder {
		return &model.Reminder{
			UserID:    "user-1",
			Title:     "Call the dentist",
			Schedule:  types.ScheduleOnce,
			TriggerAt: time.Now().Add(time.Hour),
		}
	}

	t.Run("valid reminder", func(t *testing.T) {
		gt.NoError(t, valid().Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		r := valid()
		r.Title = ""
		gt.Error(t, r.Validate())
	})

	t.Run("missing user", func(t *testing.T) {
		r := valid()
		r.UserID = ""
		gt.Error(t, r.Validate())
	})

	t.Run("invalid schedule", func(t *testing.T) {
		r := valid()
		r.Schedule = "monthly"
		gt.Error(t, r.Validate())
	})

	t.Run("zero trigger time", func(t *testing.T) {
		r := valid()
		r.TriggerAt = time.Time{}
		gt.Error(t, r.Validate())
	})
}
