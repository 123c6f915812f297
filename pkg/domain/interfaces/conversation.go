package interfaces

import (
	"context"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
)

// ConversationListLimit caps the number of conversations returned per list
const ConversationListLimit = 50

// ConversationRepository persists conversations
type ConversationRepository interface {
	// Get returns the conversation by ID, or ErrNotFound
	Get(ctx context.Context, id types.ConversationID) (*model.Conversation, error)

	// ListByParticipant returns conversations containing the user, newest
	// activity first, capped at ConversationListLimit
	ListByParticipant(ctx context.Context, uid types.UserID) ([]*model.Conversation, error)

	// FindByParticipants returns the conversation between the unordered
	// pair, or ErrNotFound when the two users have never talked
	FindByParticipants(ctx context.Context, a, b types.UserID) (*model.Conversation, error)

	// Create writes a new conversation document
	Create(ctx context.Context, conv *model.Conversation) error

	// UpdatePreview updates only the denormalized last-message fields
	UpdatePreview(ctx context.Context, id types.ConversationID, preview string, at time.Time) error
}
