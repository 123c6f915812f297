package interfaces

import (
	"context"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
)

// Notifier delivers a reminder to its user when it fires. Push delivery
// is owned by an external system; the default implementation only emits a
// log event.
type Notifier interface {
	NotifyReminder(ctx context.Context, reminder *model.Reminder) error
}
