package http

import (
	"net/http"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/usecase"
)

type userResponse struct {
	UID                string    `json:"uid"`
	Email              string    `json:"email"`
	DisplayName        string    `json:"display_name"`
	PhotoURL           string    `json:"photo_url"`
	IsAnonymousEnabled bool      `json:"is_anonymous_enabled"`
	CreatedAt          time.Time `json:"created_at"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{
		UID:                u.UID.String(),
		Email:              u.Email,
		DisplayName:        u.DisplayName,
		PhotoURL:           u.PhotoURL,
		IsAnonymousEnabled: u.IsAnonymousEnabled,
		CreatedAt:          u.CreatedAt,
	}
}

func loginHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		IDToken string `json:"id_token"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := uc.Login(r.Context(), req.IDToken)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusOK, toUserResponse(user))
	}
}

func getProfileHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFrom(w, r)
		if !ok {
			return
		}

		user, err := uc.GetProfile(r.Context(), id.UID)
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusOK, toUserResponse(user))
	}
}

func updateProfileHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		DisplayName        *string `json:"display_name"`
		IsAnonymousEnabled *bool   `json:"is_anonymous_enabled"`
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

		user, err := uc.UpdateProfile(r.Context(), id.UID, model.ProfileUpdate{
			DisplayName:        req.DisplayName,
			IsAnonymousEnabled: req.IsAnonymousEnabled,
		})
		if err != nil {
			handleError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusOK, toUserResponse(user))
	}
}
