package interfaces

import (
	"context"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
)

// NoteRepository persists notepad entries
type NoteRepository interface {
	// ListByUser returns the user's notes, newest first
	ListByUser(ctx context.Context, uid types.UserID) ([]*model.Note, error)

	// Get returns the note by ID, or ErrNotFound
	Get(ctx context.Context, id types.NoteID) (*model.Note, error)

	// Create writes a new note document
	Create(ctx context.Context, note *model.Note) error

	// Update overwrites the stored note document
	Update(ctx context.Context, note *model.Note) error

	// Delete removes the note, or returns ErrNotFound
	Delete(ctx context.Context, id types.NoteID) error
}
