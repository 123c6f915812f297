package http

import (
	"net/http"

	"github.com/chatpad-dev/chatpad/pkg/service/ai"
	"github.com/chatpad-dev/chatpad/pkg/usecase"
)

func suggestReplyHandler(uc *usecase.UseCases) http.HandlerFunc {
	type requestMessage struct {
		IsOwn bool   `json:"is_own"`
		Text  string `json:"text"`
	}
	type request struct {
		Messages []requestMessage `json:"messages"`
	}
	type response struct {
		Suggestion string `json:"suggestion"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := identityFrom(w, r); !ok {
			return
		}

		var req request
		if !decodeBody(w, r, &req) {
			return
		}

		messages := make([]ai.ContextMessage, len(req.Messages))
		for i, m := range req.Messages {
			messages[i] = ai.ContextMessage{IsOwn: m.IsOwn, Text: m.Text}
		}

		suggestion, err := uc.SuggestReply(r.Context(), messages)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusOK, response{Suggestion: suggestion})
	}
}

func summarizeHandler(uc *usecase.UseCases) http.HandlerFunc {
	type requestMessage struct {
		SenderID string `json:"sender_id"`
		Text     string `json:"text"`
	}
	type request struct {
		Messages []requestMessage `json:"messages"`
	}
	type response struct {
		Summary string `json:"summary"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := identityFrom(w, r); !ok {
			return
		}

		var req request
		if !decodeBody(w, r, &req) {
			return
		}

		messages := make([]ai.TranscriptMessage, len(req.Messages))
		for i, m := range req.Messages {
			messages[i] = ai.TranscriptMessage{SenderID: m.SenderID, Text: m.Text}
		}

		summary, err := uc.Summarize(r.Context(), messages)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusOK, response{Summary: summary})
	}
}

func extractTasksHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Text string `json:"text"`
	}
	type response struct {
		Tasks []ai.Task `json:"tasks"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := identityFrom(w, r); !ok {
			return
		}

		var req request
		if !decodeBody(w, r, &req) {
			return
		}

		tasks, err := uc.ExtractTasks(r.Context(), req.Text)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		if tasks == nil {
			tasks = []ai.Task{}
		}
		respondJSON(r.Context(), w, http.StatusOK, response{Tasks: tasks})
	}
}
