package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/chatpad-dev/chatpad/pkg/usecase"
)

type conversationResponse struct {
	ID            string    `json:"id"`
	Participants  []string  `json:"participants"`
	Type          string    `json:"type"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func toConversationResponse(c *model.Conversation) conversationResponse {
	participants := make([]string, len(c.Participants))
	for i, p := range c.Participants {
		participants[i] = p.String()
	}
	return conversationResponse{
		ID:            c.ID.String(),
		Participants:  participants,
		Type:          c.Type,
		LastMessage:   c.LastMessage,
		LastMessageAt: c.LastMessageAt,
		CreatedAt:     c.CreatedAt,
	}
}

type messageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	Text        string    `json:"text"`
	AISuggested bool      `json:"ai_suggested"`
	Timestamp   time.Time `json:"timestamp"`
	ReadBy      []string  `json:"read_by"`
}

func toMessageResponse(m *model.Message) messageResponse {
	readBy := make([]string, len(m.ReadBy))
	for i, u := range m.ReadBy {
		readBy[i] = u.String()
	}
	return messageResponse{
		ID:          m.ID.String(),
		SenderID:    m.SenderID.String(),
		Text:        m.Text,
		AISuggested: m.AISuggested,
		Timestamp:   m.Timestamp,
		ReadBy:      readBy,
	}
}

func searchUserHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(w, r)
		if !ok {
			return
		}

		user, err := uc.SearchUserByEmail(r.Context(), id.UID, r.URL.Query().Get("email"))
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusOK, toUserResponse(user))
	}
}

func listConversationsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Conversations []conversationResponse `json:"conversations"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(w, r)
		if !ok {
			return
		}

		convs, err := uc.ListConversations(r.Context(), id.UID)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		resp := response{Conversations: make([]conversationResponse, len(convs))}
		for i, c := range convs {
			resp.Conversations[i] = toConversationResponse(c)
		}
		respondJSON(r.Context(), w, http.StatusOK, resp)
	}
}

func startConversationHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		RecipientEmail string `json:"recipient_email"`
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

		recipient, err := uc.SearchUserByEmail(r.Context(), id.UID, req.RecipientEmail)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		conv, err := uc.StartConversation(r.Context(), id.UID, recipient.UID)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusOK, toConversationResponse(conv))
	}
}

func listMessagesHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Messages []messageResponse `json:"messages"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(w, r)
		if !ok {
			return
		}

		convID := types.ConversationID(chi.URLParam(r, "conversationID"))
		msgs, err := uc.ListMessages(r.Context(), id.UID, convID)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}

		resp := response{Messages: make([]messageResponse, len(msgs))}
		for i, m := range msgs {
			resp.Messages[i] = toMessageResponse(m)
		}
		respondJSON(r.Context(), w, http.StatusOK, resp)
	}
}

func sendMessageHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Text        string `json:"text"`
		AISuggested bool   `json:"ai_suggested"`
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

		convID := types.ConversationID(chi.URLParam(r, "conversationID"))
		msg, err := uc.SendMessage(r.Context(), id.UID, convID, req.Text, req.AISuggested)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusCreated, toMessageResponse(msg))
	}
}
