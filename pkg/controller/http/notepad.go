package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/chatpad-dev/chatpad/pkg/usecase"
)

type noteResponse struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Summary              string    `json:"summary"`
	SourceConversationID string    `json:"source_conversation_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func toNoteResponse(n *model.Note) noteResponse {
	return noteResponse{
		ID:                   n.ID.String(),
		Title:                n.Title,
		Summary:              n.Summary,
		SourceConversationID: n.SourceConversationID.String(),
		CreatedAt:            n.CreatedAt,
		UpdatedAt:            n.UpdatedAt,
	}
}

func listNotesHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Notes []noteResponse `json:"notes"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(w, r)
		if !ok {
			return
		}

		notes, err := uc.ListNotes(r.Context(), id.UID)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		resp := response{Notes: make([]noteResponse, len(notes))}
		for i, n := range notes {
			resp.Notes[i] = toNoteResponse(n)
		}
		respondJSON(r.Context(), w, http.StatusOK, resp)
	}
}

func createNoteHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Title                string `json:"title"`
		Summary              string `json:"summary"`
		SourceConversationID string `json:"source_conversation_id"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(w, r)
		if !ok {
			return
		}

		var req request
		if !decodeBody(w, r, &req) {
			return
		}

		note, err := uc.CreateNote(r.Context(), id.UID, req.Title, req.Summary,
			types.ConversationID(req.SourceConversationID))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusCreated, toNoteResponse(note))
	}
}

func updateNoteHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Title   *string `json:"title"`
		Summary *string `json:"summary"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(w, r)
		if !ok {
			return
		}

		var req request
		if !decodeBody(w, r, &req) {
			return
		}

		noteID := types.NoteID(chi.URLParam(r, "noteID"))
		note, err := uc.UpdateNote(r.Context(), id.UID, noteID, model.NoteUpdate{
			Title:   req.Title,
			Summary: req.Summary,
		})
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusOK, toNoteResponse(note))
	}
}

func deleteNoteHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(w, r)
		if !ok {
			return
		}

		noteID := types.NoteID(chi.URLParam(r, "noteID"))
		if err := uc.DeleteNote(r.Context(), id.UID, noteID); err != nil {
			handleError(r.Context(), w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
