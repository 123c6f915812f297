package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/chatpad-dev/chatpad/pkg/usecase"
)

type reminderResponse struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Body                 string    `json:"body"`
	Schedule             string    `json:"schedule"`
	TriggerAt            time.Time `json:"trigger_at"`
	IsActive             bool      `json:"is_active"`
	SourceConversationID string    `json:"source_conversation_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

func toReminderResponse(rm *model.Reminder) reminderResponse {
	return reminderResponse{
		ID:                   rm.ID.String(),
		Title:                rm.Title,
		Body:                 rm.Body,
		Schedule:             rm.Schedule.String(),
		TriggerAt:            rm.TriggerAt,
		IsActive:             rm.IsActive,
		SourceConversationID: rm.SourceConversationID.String(),
		CreatedAt:            rm.CreatedAt,
	}
}

func listRemindersHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Reminders []reminderResponse `json:"reminders"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(w, r)
		if !ok {
			return
		}

		reminders, err := uc.ListReminders(r.Context(), id.UID)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		resp := response{Reminders: make([]reminderResponse, len(reminders))}
		for i, rm := range reminders {
			resp.Reminders[i] = toReminderResponse(rm)
		}
		respondJSON(r.Context(), w, http.StatusOK, resp)
	}
}

func createReminderHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Title                string    `json:"title"`
		Body                 string    `json:"body"`
		Schedule             string    `json:"schedule"`
		TriggerAt            time.Time `json:"trigger_at"`
		SourceConversationID string    `json:"source_conversation_id"`
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

		schedule, err := types.ParseScheduleType(req.Schedule)
		if err != nil {
			respondError(r.Context(), w, http.StatusBadRequest, err.Error())
			return
		}

		rm, err := uc.CreateReminder(r.Context(), id.UID, req.Title, req.Body,
			schedule, req.TriggerAt, types.ConversationID(req.SourceConversationID))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusCreated, toReminderResponse(rm))
	}
}

func updateReminderHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Title     *string    `json:"title"`
		Body      *string    `json:"body"`
		Schedule  *string    `json:"schedule"`
		TriggerAt *time.Time `json:"trigger_at"`
		IsActive  *bool      `json:"is_active"`
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

		update := model.ReminderUpdate{
			Title:     req.Title,
			Body:      req.Body,
			TriggerAt: req.TriggerAt,
			IsActive:  req.IsActive,
		}
		if req.Schedule != nil {
			schedule, err := types.ParseScheduleType(*req.Schedule)
			if err != nil {
				respondError(r.Context(), w, http.StatusBadRequest, err.Error())
				return
			}
			update.Schedule = &schedule
		}

		reminderID := types.ReminderID(chi.URLParam(r, "reminderID"))
		rm, err := uc.UpdateReminder(r.Context(), id.UID, reminderID, update)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusOK, toReminderResponse(rm))
	}
}

func deleteReminderHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(w, r)
		if !ok {
			return
		}

		reminderID := types.ReminderID(chi.URLParam(r, "reminderID"))
		if err := uc.DeleteReminder(r.Context(), id.UID, reminderID); err != nil {
			handleError(r.Context(), w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
