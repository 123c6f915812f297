package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type reminderRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newReminderRepository(client *firestore.Client) *reminderRepository {
	return &reminderRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *reminderRepository) remindersCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_reminders"
	}
	return "reminders"
}

func (r *reminderRepository) collectReminders(iter *firestore.DocumentIterator) ([]*model.Reminder, error) {
	defer iter.Stop()

	var reminders []*model.Reminder
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate reminders")
		}

		var reminder model.Reminder
		if err := snap.DataTo(&reminder); err != nil {
			return nil, goerr.Wrap(err, "failed to decode reminder", goerr.V("doc_id", snap.Ref.ID))
		}
		reminders = append(reminders, &reminder)
	}

	return reminders, nil
}

func (r *reminderRepository) ListActiveByUser(ctx context.Context, uid types.UserID) ([]*model.Reminder, error) {
	iter := r.client.Collection(r.remindersCollection()).
		Where("UserID", "==", uid.String()).
		Where("IsActive", "==", true).
		Documents(ctx)

	reminders, err := r.collectReminders(iter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reminders", goerr.V("uid", uid))
	}
	return reminders, nil
}

func (r *reminderRepository) ListDue(ctx context.Context, now time.Time) ([]*model.Reminder, error) {
	iter := r.client.Collection(r.remindersCollection()).
		Where("IsActive", "==", true).
		Where("TriggerAt", "<=", now).
		Documents(ctx)

	reminders, err := r.collectReminders(iter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list due reminders", goerr.V("now", now))
	}
	return reminders, nil
}

func (r *reminderRepository) Get(ctx context.Context, id types.ReminderID) (*model.Reminder, error) {
	snap, err := r.client.Collection(r.remindersCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get reminder", goerr.V("id", id))
	}

	var reminder model.Reminder
	if err := snap.DataTo(&reminder); err != nil {
		return nil, goerr.Wrap(err, "failed to decode reminder", goerr.V("id", id))
	}
	return &reminder, nil
}

func (r *reminderRepository) Create(ctx context.Context, reminder *model.Reminder) error {
	docRef := r.client.Collection(r.remindersCollection()).Doc(reminder.ID.String())
	if _, err := docRef.Set(ctx, reminder); err != nil {
		return goerr.Wrap(err, "failed to create reminder", goerr.V("id", reminder.ID))
	}
	return nil
}

func (r *reminderRepository) Update(ctx context.Context, reminder *model.Reminder) error {
	docRef := r.client.Collection(r.remindersCollection()).Doc(reminder.ID.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", reminder.ID))
		}
		return goerr.Wrap(err, "failed to check reminder existence", goerr.V("id", reminder.ID))
	}

	if _, err := docRef.Set(ctx, reminder); err != nil {
		return goerr.Wrap(err, "failed to update reminder", goerr.V("id", reminder.ID))
	}
	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, id types.ReminderID) error {
	docRef := r.client.Collection(r.remindersCollection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check reminder existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete reminder", goerr.V("id", id))
	}
	return nil
}
