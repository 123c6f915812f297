package interfaces

import (
	"context"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
)

// ReminderRepository persists reminders
type ReminderRepository interface {
	// ListActiveByUser returns the user's active reminders
	ListActiveByUser(ctx context.Context, uid types.UserID) ([]*model.Reminder, error)

	// ListDue returns all active reminders with TriggerAt at or before now,
	// across all users. Used by the scheduler.
	ListDue(ctx context.Context, now time.Time) ([]*model.Reminder, error)

	// Get returns the reminder by ID, or ErrNotFound
	Get(ctx context.Context, id types.ReminderID) (*model.Reminder, error)

	// Create writes a new reminder document
	Create(ctx context.Context, reminder *model.Reminder) error

	// Update overwrites the stored reminder document
	Update(ctx context.Context, reminder *model.Reminder) error

	// Delete removes the reminder, or returns ErrNotFound
	Delete(ctx context.Context, id types.ReminderID) error
}
