package model

import (
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/types"
)

// ConversationTypeKnown is the only conversation type currently issued.
// Anonymous matching would introduce further types.
const ConversationTypeKnown = "known"

// PreviewLength is the maximum length of the denormalized last-message
// preview stored on a conversation.
const PreviewLength = 50

// Conversation represents a direct chat between exactly two users. A
// conversation for the same unordered pair of participants is unique and
// created lazily on first contact.
type Conversation struct {
	ID            types.ConversationID
	Participants  []types.UserID
	Type          string
	LastMessage   string
	LastMessageAt time.Time
	CreatedAt     time.Time
}

// NewConversation creates a fresh conversation between two users with an
// empty preview
func NewConversation(a, b types.UserID, now time.Time) *Conversation {
	return &Conversation{
		ID:            types.NewConversationID(),
		Participants:  []types.UserID{a, b},
		Type:          ConversationTypeKnown,
		LastMessage:   "",
		LastMessageAt: now,
		CreatedAt:     now,
	}
}

// HasParticipant reports whether the user belongs to the conversation
func (c *Conversation) HasParticipant(uid types.UserID) bool {
	for _, p := range c.Participants {
		if p == uid {
			return true
		}
	}
	return false
}

// Preview truncates message text to the stored preview length
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= PreviewLength {
		return text
	}
	return string(runes[:PreviewLength])
}
