package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type conversationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newConversationRepository(client *firestore.Client) *conversationRepository {
	return &conversationRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *conversationRepository) conversationsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_conversations"
	}
	return "conversations"
}

func (r *conversationRepository) Get(ctx context.Context, id types.ConversationID) (*model.Conversation, error) {
	snap, err := r.client.Collection(r.conversationsCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "conversation not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get conversation", goerr.V("id", id))
	}

	var conv model.Conversation
	if err := snap.DataTo(&conv); err != nil {
		return nil, goerr.Wrap(err, "failed to decode conversation", goerr.V("id", id))
	}
	return &conv, nil
}

func (r *conversationRepository) ListByParticipant(ctx context.Context, uid types.UserID) ([]*model.Conversation, error) {
	iter := r.client.Collection(r.conversationsCollection()).
		Where("Participants", "array-contains", uid.String()).
		OrderBy("LastMessageAt", firestore.Desc).
		Limit(interfaces.ConversationListLimit).
		Documents(ctx)
	defer iter.Stop()

	var convs []*model.Conversation
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate conversations", goerr.V("uid", uid))
		}

		var conv model.Conversation
		if err := snap.DataTo(&conv); err != nil {
			return nil, goerr.Wrap(err, "failed to decode conversation", goerr.V("doc_id", snap.Ref.ID))
		}
		convs = append(convs, &conv)
	}

	return convs, nil
}

func (r *conversationRepository) FindByParticipants(ctx context.Context, a, b types.UserID) (*model.Conversation, error) {
	// Firestore has no two-value array membership filter; query one side
	// and match the other in process.
	iter := r.client.Collection(r.conversationsCollection()).
		Where("Participants", "array-contains", a.String()).
		Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate conversations")
		}

		var conv model.Conversation
		if err := snap.DataTo(&conv); err != nil {
			return nil, goerr.Wrap(err, "failed to decode conversation", goerr.V("doc_id", snap.Ref.ID))
		}
		if conv.HasParticipant(b) {
			return &conv, nil
		}
	}

	return nil, goerr.Wrap(ErrNotFound, "conversation not found",
		goerr.V("participants", []types.UserID{a, b}))
}

func (r *conversationRepository) Create(ctx context.Context, conv *model.Conversation) error {
	docRef := r.client.Collection(r.conversationsCollection()).Doc(conv.ID.String())
	if _, err := docRef.Set(ctx, conv); err != nil {
		return goerr.Wrap(err, "failed to create conversation", goerr.V("id", conv.ID))
	}
	return nil
}

func (r *conversationRepository) UpdatePreview(ctx context.Context, id types.ConversationID, preview string, at time.Time) error {
	docRef := r.client.Collection(r.conversationsCollection()).Doc(id.String())

	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "LastMessage", Value: preview},
		{Path: "LastMessageAt", Value: at},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "conversation not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to update conversation preview", goerr.V("id", id))
	}
	return nil
}
