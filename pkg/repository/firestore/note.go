package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type noteRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newNoteRepository(client *firestore.Client) *noteRepository {
	return &noteRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *noteRepository) notesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_notes"
	}
	return "notes"
}

func (r *noteRepository) ListByUser(ctx context.Context, uid types.UserID) ([]*model.Note, error) {
	iter := r.client.Collection(r.notesCollection()).
		Where("UserID", "==", uid.String()).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var notes []*model.Note
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate notes", goerr.V("uid", uid))
		}

		var note model.Note
		if err := snap.DataTo(&note); err != nil {
			return nil, goerr.Wrap(err, "failed to decode note", goerr.V("doc_id", snap.Ref.ID))
		}
		notes = append(notes, &note)
	}

	return notes, nil
}

func (r *noteRepository) Get(ctx context.Context, id types.NoteID) (*model.Note, error) {
	snap, err := r.client.Collection(r.notesCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "note not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get note", goerr.V("id", id))
	}

	var note model.Note
	if err := snap.DataTo(&note); err != nil {
		return nil, goerr.Wrap(err, "failed to decode note", goerr.V("id", id))
	}
	return &note, nil
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	docRef := r.client.Collection(r.notesCollection()).Doc(note.ID.String())
	if _, err := docRef.Set(ctx, note); err != nil {
		return goerr.Wrap(err, "failed to create note", goerr.V("id", note.ID))
	}
	return nil
}

func (r *noteRepository) Update(ctx context.Context, note *model.Note) error {
	docRef := r.client.Collection(r.notesCollection()).Doc(note.ID.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "note not found", goerr.V("id", note.ID))
		}
		return goerr.Wrap(err, "failed to check note existence", goerr.V("id", note.ID))
	}

	if _, err := docRef.Set(ctx, note); err != nil {
		return goerr.Wrap(err, "failed to update note", goerr.V("id", note.ID))
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id types.NoteID) error {
	docRef := r.client.Collection(r.notesCollection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "note not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check note existence", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete note", goerr.V("id", id))
	}
	return nil
}
