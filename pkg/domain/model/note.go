package model

import (
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/types"
)

// Note is a user-owned notepad entry, optionally back-referencing the
// conversation it was captured from. The reference carries no ownership.
type Note struct {
	ID                   types.NoteID
	UserID               types.UserID
	Title                string
	Summary              string
	SourceConversationID types.ConversationID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NoteUpdate holds a partial note mutation. Nil fields are left untouched.
type NoteUpdate struct {
	Title   *string
	Summary *string
}

// Apply overlays the non-nil fields onto the note
func (u NoteUpdate) Apply(note *Note) {
	if u.Title != nil {
		note.Title = *u.Title
	}
	if u.Summary != nil {
		note.Summary = *u.Summary
	}
}
