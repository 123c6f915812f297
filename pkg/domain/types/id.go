package types

import "github.com/google/uuid"

// UserID is the stable identity key issued by the identity provider.
// It is never generated locally.
type UserID string

func (id UserID) String() string {
	return string(id)
}

// ConversationID identifies a conversation document
type ConversationID string

// NewConversationID generates a new random conversation ID
func NewConversationID() ConversationID {
	return ConversationID(uuid.New().String())
}

func (id ConversationID) String() string {
	return string(id)
}

// MessageID identifies a message within a conversation
type MessageID string

// NewMessageID generates a new random message ID
func NewMessageID() MessageID {
	return MessageID(uuid.New().String())
}

func (id MessageID) String() string {
	return string(id)
}

// NoteID identifies a note document
type NoteID string

// NewNoteID generates a new random note ID
func NewNoteID() NoteID {
	return NoteID(uuid.New().String())
}

func (id NoteID) String() string {
	return string(id)
}

// ReminderID identifies a reminder document
type ReminderID string

// NewReminderID generates a new random reminder ID
func NewReminderID() ReminderID {
	return ReminderID(uuid.New().String())
}

func (id ReminderID) String() string {
	return string(id)
}
