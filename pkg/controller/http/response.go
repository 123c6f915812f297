package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chatpad-dev/chatpad/pkg/usecase"
	"github.com/chatpad-dev/chatpad/pkg/utils/errutil"
	"github.com/chatpad-dev/chatpad/pkg/utils/logging"
	"github.com/chatpad-dev/chatpad/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

func respondError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	respondJSON(ctx, w, status, map[string]string{"error": msg})
}

// handleError maps use case sentinel errors to status codes. Anything
// unmapped is a 500 and gets logged with its stack.
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		respondError(ctx, w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, usecase.ErrAccessDenied):
		respondError(ctx, w, http.StatusForbidden, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		respondError(ctx, w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrInvalidInput):
		respondError(ctx, w, http.StatusBadRequest, err.Error())
	default:
		errutil.Handle(ctx, err, "request failed")
		respondError(ctx, w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody parses the JSON request body into dst, responding with 400
// on malformed input
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logging.From(r.Context()).Debug("malformed request body", "error", err.Error())
		respondError(r.Context(), w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
