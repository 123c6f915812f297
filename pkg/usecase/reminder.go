package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ListReminders returns the caller's active reminders
func (uc *UseCases) ListReminders(ctx context.Context, uid types.UserID) ([]*model.Reminder, error) {
	reminders, err := uc.repo.Reminder().ListActiveByUser(ctx, uid)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reminders", goerr.V("uid", uid))
	}
	return reminders, nil
}

// CreateReminder stores a new active reminder owned by the caller
func (uc *UseCases) CreateReminder(ctx context.Context, uid types.UserID, title, body string, schedule types.ScheduleType, triggerAt time.Time, source types.ConversationID) (*model.Reminder, error) {
	reminder := &model.Reminder{
		ID:                   types.NewReminderID(),
		UserID:               uid,
		Title:                title,
		Body:                 body,
		Schedule:             schedule,
		TriggerAt:            triggerAt,
		IsActive:             true,
		SourceConversationID: source,
		CreatedAt:            uc.now(),
	}
	if err := reminder.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid reminder", goerr.V("cause", err.Error()))
	}

	if err := uc.repo.Reminder().Create(ctx, reminder); err != nil {
		return nil, goerr.Wrap(err, "failed to create reminder", goerr.V("uid", uid))
	}
	return reminder, nil
}

// getOwnReminder loads the reminder and enforces ownership
func (uc *UseCases) getOwnReminder(ctx context.Context, uid types.UserID, id types.ReminderID) (*model.Reminder, error) {
	reminder, err := uc.repo.Reminder().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get reminder", goerr.V("id", id))
	}
	if reminder.UserID != uid {
		return nil, goerr.Wrap(ErrAccessDenied, "reminder belongs to another user",
			goerr.V("id", id), goerr.V("uid", uid))
	}
	return reminder, nil
}

// UpdateReminder applies a partial mutation to the caller's reminder
func (uc *UseCases) UpdateReminder(ctx context.Context, uid types.UserID, id types.ReminderID, update model.ReminderUpdate) (*model.Reminder, error) {
	reminder, err := uc.getOwnReminder(ctx, uid, id)
	if err != nil {
		return nil, err
	}

	update.Apply(reminder)
	if err := reminder.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid reminder", goerr.V("cause", err.Error()))
	}

	if err := uc.repo.Reminder().Update(ctx, reminder); err != nil {
		return nil, goerr.Wrap(err, "failed to update reminder", goerr.V("id", id))
	}
	return reminder, nil
}

// DeleteReminder removes the caller's reminder
func (uc *UseCases) DeleteReminder(ctx context.Context, uid types.UserID, id types.ReminderID) error {
	if _, err := uc.getOwnReminder(ctx, uid, id); err != nil {
		return err
	}

	if err := uc.repo.Reminder().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete reminder", goerr.V("id", id))
	}
	return nil
}
