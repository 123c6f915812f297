package memory

import (
	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository for development and testing
type Memory struct {
	user         *userRepository
	conversation *conversationRepository
	message      *messageRepository
	note         *noteRepository
	reminder     *reminderRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		user:         newUserRepository(),
		conversation: newConversationRepository(),
		message:      newMessageRepository(),
		note:         newNoteRepository(),
		reminder:     newReminderRepository(),
	}
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Conversation() interfaces.ConversationRepository {
	return m.conversation
}

func (m *Memory) Message() interfaces.MessageRepository {
	return m.message
}

func (m *Memory) Note() interfaces.NoteRepository {
	return m.note
}

func (m *Memory) Reminder() interfaces.ReminderRepository {
	return m.reminder
}

func (m *Memory) Close() error {
	return nil
}
