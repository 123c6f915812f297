package interfaces

import (
	"context"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
)

// MessageListLimit caps the number of messages returned per list
const MessageListLimit = 100

// MessageRepository persists messages under their parent conversation
type MessageRepository interface {
	// List returns messages oldest first, capped at MessageListLimit
	List(ctx context.Context, convID types.ConversationID) ([]*model.Message, error)

	// Create appends a message to the conversation
	Create(ctx context.Context, convID types.ConversationID, msg *model.Message) error
}
