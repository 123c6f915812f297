package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type noteRepository struct {
	mu    sync.RWMutex
	notes map[types.NoteID]*model.Note
}

func newNoteRepository() *noteRepository {
	return &noteRepository{
		notes: make(map[types.NoteID]*model.Note),
	}
}

func copyNote(n *model.Note) *model.Note {
	copied := *n
	return &copied
}

func (r *noteRepository) ListByUser(ctx context.Context, uid types.UserID) ([]*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]*model.Note, 0)
	for _, n := range r.notes {
		if n.UserID == uid {
			notes = append(notes, copyNote(n))
		}
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}

func (r *noteRepository) Get(ctx context.Context, id types.NoteID) (*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.notes[id]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "note not found", goerr.V("id", id))
	}
	return copyNote(note), nil
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes[note.ID] = copyNote(note)
	return nil
}

func (r *noteRepository) Update(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[note.ID]; !ok {
		return goerr.Wrap(ErrNotFound, "note not found", goerr.V("id", note.ID))
	}
	r.notes[note.ID] = copyNote(note)
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id types.NoteID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[id]; !ok {
		return goerr.Wrap(ErrNotFound, "note not found", goerr.V("id", id))
	}
	delete(r.notes, id)
	return nil
}
