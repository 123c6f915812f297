package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Firestore is the repository backed by Google Cloud Firestore
type Firestore struct {
	client       *firestore.Client
	user         *userRepository
	conversation *conversationRepository
	message      *messageRepository
	note         *noteRepository
	reminder     *reminderRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, mainly for tests
// sharing a project
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.user.collectionPrefix = prefix
		f.conversation.collectionPrefix = prefix
		f.message.collectionPrefix = prefix
		f.note.collectionPrefix = prefix
		f.reminder.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID == "" {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	f := &Firestore{
		client:       client,
		user:         newUserRepository(client),
		conversation: newConversationRepository(client),
		message:      newMessageRepository(client),
		note:         newNoteRepository(client),
		reminder:     newReminderRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.user
}

func (f *Firestore) Conversation() interfaces.ConversationRepository {
	return f.conversation
}

func (f *Firestore) Message() interfaces.MessageRepository {
	return f.message
}

func (f *Firestore) Note() interfaces.NoteRepository {
	return f.note
}

func (f *Firestore) Reminder() interfaces.ReminderRepository {
	return f.reminder
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
