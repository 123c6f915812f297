package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ListNotes returns the caller's notes, newest first
func (uc *UseCases) ListNotes(ctx context.Context, uid types.UserID) ([]*model.Note, error) {
	notes, err := uc.repo.Note().ListByUser(ctx, uid)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notes", goerr.V("uid", uid))
	}
	return notes, nil
}

// CreateNote stores a new note owned by the caller
func (uc *UseCases) CreateNote(ctx context.Context, uid types.UserID, title, summary string, source types.ConversationID) (*model.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "note title is required")
	}

	now := uc.now()
	note := &model.Note{
		ID:                   types.NewNoteID(),
		UserID:               uid,
		Title:                title,
		Summary:              summary,
		SourceConversationID: source,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Note().Create(ctx, note); err != nil {
		return nil, goerr.Wrap(err, "failed to create note", goerr.V("uid", uid))
	}
	return note, nil
}

// getOwnNote loads the note and enforces ownership
func (uc *UseCases) getOwnNote(ctx context.Context, uid types.UserID, id types.NoteID) (*model.Note, error) {
	note, err := uc.repo.Note().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotFound, "note not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get note", goerr.V("id", id))
	}
	if note.UserID != uid {
		return nil, goerr.Wrap(ErrAccessDenied, "note belongs to another user",
			goerr.V("id", id), goerr.V("uid", uid))
	}
	return note, nil
}

// UpdateNote applies a partial mutation to the caller's note
func (uc *UseCases) UpdateNote(ctx context.Context, uid types.UserID, id types.NoteID, update model.NoteUpdate) (*model.Note, error) {
	note, err := uc.getOwnNote(ctx, uid, id)
	if err != nil {
		return nil, err
	}

	update.Apply(note)
	if strings.TrimSpace(note.Title) == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "note title is required")
	}
	note.UpdatedAt = uc.now()

	if err := uc.repo.Note().Update(ctx, note); err != nil {
		return nil, goerr.Wrap(err, "failed to update note", goerr.V("id", id))
	}
	return note, nil
}

// DeleteNote removes the caller's note
func (uc *UseCases) DeleteNote(ctx context.Context, uid types.UserID, id types.NoteID) error {
	if _, err := uc.getOwnNote(ctx, uid, id); err != nil {
		return err
	}

	if err := uc.repo.Note().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete note", goerr.V("id", id))
	}
	return nil
}
