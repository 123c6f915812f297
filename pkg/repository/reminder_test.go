package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func newTestReminder(uid types.UserID, schedule types.ScheduleType, triggerAt time.Time) *model.Reminder {
	return &model.Reminder{
		ID:        types.NewReminderID(),
		UserID:    uid,
		Title:     "Water the plants",
		Body:      "front balcony too",
		Schedule:  schedule,
		TriggerAt: triggerAt.Truncate(time.Microsecond),
		IsActive:  true,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func runReminderRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create then Get round-trips", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		reminder := newTestReminder("user-a", types.ScheduleDaily, time.Now().UTC().Add(time.Hour))
		gt.NoError(t, repo.Reminder().Create(ctx, reminder)).Required()

		got, err := repo.Reminder().Get(ctx, reminder.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Title).Equal(reminder.Title)
		gt.Value(t, got.Schedule).Equal(types.ScheduleDaily)
		gt.Bool(t, got.IsActive).True()
	})

	t.Run("ListActiveByUser filters owner and active flag", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		active := newTestReminder("user-a", types.ScheduleOnce, time.Now().UTC().Add(time.Hour))
		inactive := newTestReminder("user-a", types.ScheduleOnce, time.Now().UTC().Add(time.Hour))
		inactive.IsActive = false
		other := newTestReminder("user-b", types.ScheduleOnce, time.Now().UTC().Add(time.Hour))
		gt.NoError(t, repo.Reminder().Create(ctx, active)).Required()
		gt.NoError(t, repo.Reminder().Create(ctx, inactive)).Required()
		gt.NoError(t, repo.Reminder().Create(ctx, other)).Required()

		reminders, err := repo.Reminder().ListActiveByUser(ctx, "user-a")
		gt.NoError(t, err).Required()
		gt.Array(t, reminders).Length(1)
		gt.Value(t, reminders[0].ID).Equal(active.ID)
	})

	t.Run("ListDue returns active reminders at or before now", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		now := time.Now().UTC()
		due := newTestReminder("user-a", types.ScheduleDaily, now.Add(-time.Minute))
		exact := newTestReminder("user-b", types.ScheduleOnce, now)
		future := newTestReminder("user-a", types.ScheduleOnce, now.Add(time.Hour))
		disabled := newTestReminder("user-a", types.ScheduleOnce, now.Add(-time.Hour))
		disabled.IsActive = false
		gt.NoError(t, repo.Reminder().Create(ctx, due)).Required()
		gt.NoError(t, repo.Reminder().Create(ctx, exact)).Required()
		gt.NoError(t, repo.Reminder().Create(ctx, future)).Required()
		gt.NoError(t, repo.Reminder().Create(ctx, disabled)).Required()

		dueList, err := repo.Reminder().ListDue(ctx, now)
		gt.NoError(t, err).Required()
		gt.Array(t, dueList).Length(2)

		ids := map[types.ReminderID]bool{}
		for _, r := range dueList {
			ids[r.ID] = true
		}
		gt.Bool(t, ids[due.ID]).True()
		gt.Bool(t, ids[exact.ID]).True()
	})

	t.Run("Update persists a fired transition", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		reminder := newTestReminder("user-a", types.ScheduleWeekly, time.Now().UTC().Add(-time.Minute))
		gt.NoError(t, repo.Reminder().Create(ctx, reminder)).Required()

		before := reminder.TriggerAt
		reminder.Fire()
		gt.NoError(t, repo.Reminder().Update(ctx, reminder)).Required()

		got, err := repo.Reminder().Get(ctx, reminder.ID)
		gt.NoError(t, err).Required()
		gt.Bool(t, got.TriggerAt.Equal(before.Add(7*24*time.Hour))).True()
		gt.Bool(t, got.IsActive).True()
	})

	t.Run("Delete removes the reminder", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		reminder := newTestReminder("user-a", types.ScheduleOnce, time.Now().UTC())
		gt.NoError(t, repo.Reminder().Create(ctx, reminder)).Required()

		gt.NoError(t, repo.Reminder().Delete(ctx, reminder.ID)).Required()

		_, err := repo.Reminder().Get(ctx, reminder.ID)
		gt.Error(t, err)
	})

	t.Run("missing reminder operations fail", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Reminder().Get(ctx, "no-such-reminder")
		gt.Error(t, err)
		gt.Error(t, repo.Reminder().Delete(ctx, "no-such-reminder"))
		gt.Error(t, repo.Reminder().Update(ctx, newTestReminder("user-a", types.ScheduleOnce, time.Now())))
	})
}

func TestReminderRepository_Memory(t *testing.T) {
	runReminderRepositoryTest(t, newMemoryRepo)
}

func TestReminderRepository_Firestore(t *testing.T) {
	runReminderRepositoryTest(t, newFirestoreRepo)
}
