package memory

import (
	"context"
	"sync"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type reminderRepository struct {
	mu        sync.RWMutex
	reminders map[types.ReminderID]*model.Reminder
}

func newReminderRepository() *reminderRepository {
	return &reminderRepository{
		reminders: make(map[types.ReminderID]*model.Reminder),
	}
}

func copyReminder(rm *model.Reminder) *model.Reminder {
	copied := *rm
	return &copied
}

func (r *reminderRepository) ListActiveByUser(ctx context.Context, uid types.UserID) ([]*model.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reminders := make([]*model.Reminder, 0)
	for _, rm := range r.reminders {
		if rm.UserID == uid && rm.IsActive {
			reminders = append(reminders, copyReminder(rm))
		}
	}
	return reminders, nil
}

func (r *reminderRepository) ListDue(ctx context.Context, now time.Time) ([]*model.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reminders := make([]*model.Reminder, 0)
	for _, rm := range r.reminders {
		if rm.IsActive && !rm.TriggerAt.After(now) {
			reminders = append(reminders, copyReminder(rm))
		}
	}
	return reminders, nil
}

func (r *reminderRepository) Get(ctx context.Context, id types.ReminderID) (*model.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reminder, ok := r.reminders[id]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", id))
	}
	return copyReminder(reminder), nil
}

func (r *reminderRepository) Create(ctx context.Context, reminder *model.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reminders[reminder.ID] = copyReminder(reminder)
	return nil
}

func (r *reminderRepository) Update(ctx context.Context, reminder *model.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reminders[reminder.ID]; !ok {
		return goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", reminder.ID))
	}
	r.reminders[reminder.ID] = copyReminder(reminder)
	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, id types.ReminderID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reminders[id]; !ok {
		return goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", id))
	}
	delete(r.reminders, id)
	return nil
}
