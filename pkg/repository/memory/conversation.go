package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type conversationRepository struct {
	mu            sync.RWMutex
	conversations map[types.ConversationID]*model.Conversation
}

func newConversationRepository() *conversationRepository {
	return &conversationRepository{
		conversations: make(map[types.ConversationID]*model.Conversation),
	}
}

func copyConversation(c *model.Conversation) *model.Conversation {
	copied := *c
	copied.Participants = make([]types.UserID, len(c.Participants))
	copy(copied.Participants, c.Participants)
	return &copied
}

func (r *conversationRepository) Get(ctx context.Context, id types.ConversationID) (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, ok := r.conversations[id]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "conversation not found", goerr.V("id", id))
	}
	return copyConversation(conv), nil
}

func (r *conversationRepository) ListByParticipant(ctx context.Context, uid types.UserID) ([]*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	convs := make([]*model.Conversation, 0)
	for _, conv := range r.conversations {
		if conv.HasParticipant(uid) {
			convs = append(convs, copyConversation(conv))
		}
	}

	sort.Slice(convs, func(i, j int) bool {
		return convs[i].LastMessageAt.After(convs[j].LastMessageAt)
	})

	if len(convs) > interfaces.ConversationListLimit {
		convs = convs[:interfaces.ConversationListLimit]
	}
	return convs, nil
}

func (r *conversationRepository) FindByParticipants(ctx context.Context, a, b types.UserID) (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, conv := range r.conversations {
		if conv.HasParticipant(a) && conv.HasParticipant(b) {
			return copyConversation(conv), nil
		}
	}
	return nil, goerr.Wrap(ErrNotFound, "conversation not found",
		goerr.V("participants", []types.UserID{a, b}))
}

func (r *conversationRepository) Create(ctx context.Context, conv *model.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conversations[conv.ID] = copyConversation(conv)
	return nil
}

func (r *conversationRepository) UpdatePreview(ctx context.Context, id types.ConversationID, preview string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, ok := r.conversations[id]
	if !ok {
		return goerr.Wrap(ErrNotFound, "conversation not found", goerr.V("id", id))
	}
	conv.LastMessage = preview
	conv.LastMessageAt = at
	return nil
}
