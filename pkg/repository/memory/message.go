package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
)

type messageRepository struct {
	mu       sync.RWMutex
	messages map[types.ConversationID][]*model.Message
}

func newMessageRepository() *messageRepository {
	return &messageRepository{
		messages: make(map[types.ConversationID][]*model.Message),
	}
}

func copyMessage(m *model.Message) *model.Message {
	copied := *m
	copied.ReadBy = make([]types.UserID, len(m.ReadBy))
	copy(copied.ReadBy, m.ReadBy)
	return &copied
}

func (r *messageRepository) List(ctx context.Context, convID types.ConversationID) ([]*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.messages[convID]
	msgs := make([]*model.Message, 0, len(stored))
	for _, m := range stored {
		msgs = append(msgs, copyMessage(m))
	}

	sort.Slice(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})

	if len(msgs) > interfaces.MessageListLimit {
		msgs = msgs[:interfaces.MessageListLimit]
	}
	return msgs, nil
}

func (r *messageRepository) Create(ctx context.Context, convID types.ConversationID, msg *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages[convID] = append(r.messages[convID], copyMessage(msg))
	return nil
}
