package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func newTestNote(uid types.UserID, title string, createdAt time.Time) *model.Note {
	return &model.Note{
		ID:        types.NewNoteID(),
		UserID:    uid,
		Title:     title,
		Summary:   "summary of " + title,
		CreatedAt: createdAt.Truncate(time.Microsecond),
		UpdatedAt: createdAt.Truncate(time.Microsecond),
	}
}

func runNoteRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create then Get round-trips", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		note := newTestNote("user-a", "Groceries", time.Now().UTC())
		note.SourceConversationID = "conv-1"
		gt.NoError(t, repo.Note().Create(ctx, note)).Required()

		got, err := repo.Note().Get(ctx, note.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Title).Equal("Groceries")
		gt.Value(t, got.SourceConversationID).Equal(types.ConversationID("conv-1"))
	})

	t.Run("ListByUser returns only own notes, newest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		base := time.Now().UTC()
		older := newTestNote("user-a", "older", base.Add(-time.Hour))
		newer := newTestNote("user-a", "newer", base)
		other := newTestNote("user-b", "other", base)
		gt.NoError(t, repo.Note().Create(ctx, older)).Required()
		gt.NoError(t, repo.Note().Create(ctx, newer)).Required()
		gt.NoError(t, repo.Note().Create(ctx, other)).Required()

		notes, err := repo.Note().ListByUser(ctx, "user-a")
		gt.NoError(t, err).Required()
		gt.Array(t, notes).Length(2)
		gt.Value(t, notes[0].Title).Equal("newer")
		gt.Value(t, notes[1].Title).Equal("older")
	})

	t.Run("Update overwrites the document", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		note := newTestNote("user-a", "before", time.Now().UTC())
		gt.NoError(t, repo.Note().Create(ctx, note)).Required()

		note.Title = "after"
		note.UpdatedAt = time.Now().UTC()
		gt.NoError(t, repo.Note().Update(ctx, note)).Required()

		got, err := repo.Note().Get(ctx, note.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Title).Equal("after")
	})

	t.Run("Delete removes the note", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		note := newTestNote("user-a", "doomed", time.Now().UTC())
		gt.NoError(t, repo.Note().Create(ctx, note)).Required()

		gt.NoError(t, repo.Note().Delete(ctx, note.ID)).Required()

		_, err := repo.Note().Get(ctx, note.ID)
		gt.Error(t, err)
	})

	t.Run("Get, Update and Delete fail on missing note", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Note().Get(ctx, "no-such-note")
		gt.Error(t, err)

		gt.Error(t, repo.Note().Update(ctx, newTestNote("user-a", "ghost", time.Now().UTC())))
		gt.Error(t, repo.Note().Delete(ctx, "no-such-note"))
	})
}

func TestNoteRepository_Memory(t *testing.T) {
	runNoteRepositoryTest(t, newMemoryRepo)
}

func TestNoteRepository_Firestore(t *testing.T) {
	runNoteRepositoryTest(t, newFirestoreRepo)
}
