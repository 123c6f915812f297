package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	User() UserRepository
	Conversation() ConversationRepository
	Message() MessageRepository
	Note() NoteRepository
	Reminder() ReminderRepository

	Close() error
}
