package model

import (
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/types"
)

// Message is a single chat message. Messages are append-only and owned by
// their parent conversation.
type Message struct {
	ID          types.MessageID
	SenderID    types.UserID
	Text        string
	AISuggested bool
	Timestamp   time.Time
	ReadBy      []types.UserID
}

// NewMessage creates a message with ReadBy seeded with the sender
func NewMessage(sender types.UserID, text string, aiSuggested bool, now time.Time) *Message {
	return &Message{
		ID:          types.NewMessageID(),
		SenderID:    sender,
		Text:        text,
		AISuggested: aiSuggested,
		Timestamp:   now,
		ReadBy:      []types.UserID{sender},
	}
}
