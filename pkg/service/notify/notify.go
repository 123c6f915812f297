package notify

import (
	"context"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/utils/logging"
)

// LogNotifier delivers reminder notifications to the structured log.
// It stands in for a push delivery channel; swapping in FCM or email
// only requires another Notifier implementation.
type LogNotifier struct{}

// NewLogNotifier creates a notifier that writes to the application log
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyReminder(ctx context.Context, reminder *model.Reminder) error {
	logging.From(ctx).Info("reminder due",
		"reminder_id", reminder.ID,
		"user_id", reminder.UserID,
		"title", reminder.Title,
		"schedule", reminder.Schedule,
		"trigger_at", reminder.TriggerAt,
	)
	return nil
}
