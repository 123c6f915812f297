package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
)

type messageRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMessageRepository(client *firestore.Client) *messageRepository {
	return &messageRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *messageRepository) conversationsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_conversations"
	}
	return "conversations"
}

// messagesRef returns the messages subcollection of a conversation
func (r *messageRepository) messagesRef(convID types.ConversationID) *firestore.CollectionRef {
	return r.client.Collection(r.conversationsCollection()).
		Doc(convID.String()).
		Collection("messages")
}

func (r *messageRepository) List(ctx context.Context, convID types.ConversationID) ([]*model.Message, error) {
	iter := r.messagesRef(convID).
		OrderBy("Timestamp", firestore.Asc).
		Limit(interfaces.MessageListLimit).
		Documents(ctx)
	defer iter.Stop()

	var msgs []*model.Message
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate messages", goerr.V("conversation_id", convID))
		}

		var msg model.Message
		if err := snap.DataTo(&msg); err != nil {
			return nil, goerr.Wrap(err, "failed to decode message", goerr.V("doc_id", snap.Ref.ID))
		}
		msgs = append(msgs, &msg)
	}

	return msgs, nil
}

func (r *messageRepository) Create(ctx context.Context, convID types.ConversationID, msg *model.Message) error {
	docRef := r.messagesRef(convID).Doc(msg.ID.String())
	if _, err := docRef.Set(ctx, msg); err != nil {
		return goerr.Wrap(err, "failed to create message",
			goerr.V("conversation_id", convID),
			goerr.V("id", msg.ID),
		)
	}
	return nil
}
