package worker

import (
	"context"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ReminderWorker periodically fires reminders whose trigger time has passed.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type ReminderWorker struct {
	repo     interfaces.Repository
	notifier interfaces.Notifier
	interval time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// ReminderWorkerOption configures a ReminderWorker
type ReminderWorkerOption func(*ReminderWorker)

// WithClock overrides the time source, used by tests
func WithClock(now func() time.Time) ReminderWorkerOption {
	return func(w *ReminderWorker) {
		w.now = now
	}
}

// NewReminderWorker creates a new worker that checks for due reminders
func NewReminderWorker(repo interfaces.Repository, notifier interfaces.Notifier, interval time.Duration, opts ...ReminderWorkerOption) *ReminderWorker {
	w := &ReminderWorker{
		repo:     repo,
		notifier: notifier,
		interval: interval,
		now:      time.Now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins the background check loop. It does not block server startup.
func (w *ReminderWorker) Start(ctx context.Context) error {
	logging.Default().Info("Reminder worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *ReminderWorker) Stop() {
	logging.Default().Info("Reminder worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Reminder worker stopped")
}

// run is the main worker loop (runs in goroutine). Ticks are processed
// strictly sequentially; a slow cycle coalesces pending ticks rather
// than overlapping with the next one.
func (w *ReminderWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	if err := w.CheckDue(ctx); err != nil {
		logging.Default().Error("Initial reminder check failed (will retry next interval)",
			"error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.CheckDue(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("Reminder check failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			logging.Default().Info("Reminder worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("Reminder worker context cancelled")
			return
		}
	}
}

// CheckDue performs a single check cycle: every active reminder whose
// trigger time is at or before now is notified and advanced. A failure
// on one reminder is logged and does not block the others.
func (w *ReminderWorker) CheckDue(ctx context.Context) error {
	now := w.now()

	due, err := w.repo.Reminder().ListDue(ctx, now)
	if err != nil {
		return goerr.Wrap(err, "failed to list due reminders")
	}

	if len(due) == 0 {
		return nil
	}

	logging.From(ctx).Info("processing due reminders", "count", len(due))

	for _, reminder := range due {
		if err := w.fire(ctx, reminder); err != nil {
			logging.From(ctx).Error("failed to process reminder",
				"reminder_id", reminder.ID,
				"error", err.Error())
		}
	}

	return nil
}

func (w *ReminderWorker) fire(ctx context.Context, reminder *model.Reminder) error {
	if err := w.notifier.NotifyReminder(ctx, reminder); err != nil {
		return goerr.Wrap(err, "failed to notify reminder", goerr.V("reminderID", reminder.ID))
	}

	reminder.Fire()

	if err := w.repo.Reminder().Update(ctx, reminder); err != nil {
		return goerr.Wrap(err, "failed to update reminder after firing", goerr.V("reminderID", reminder.ID))
	}

	return nil
}
