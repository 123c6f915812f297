package http

import (
	"net/http"
	"strings"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model/auth"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
)

// authMiddleware verifies the bearer token on every request and stores
// the resolved identity in the request context. There is no session
// state; each request hits the identity provider's verification path.
func authMiddleware(verifier interfaces.IdentityVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondError(r.Context(), w, http.StatusUnauthorized, "authentication required")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respondError(r.Context(), w, http.StatusUnauthorized, "malformed authorization header")
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				respondError(r.Context(), w, http.StatusUnauthorized, "invalid token")
				return
			}

			identity := &auth.Identity{
				UID:   types.UserID(claims.UID),
				Email: claims.Email,
			}
			ctx := auth.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// identityFrom returns the caller identity, writing a 401 when the
// middleware did not run
func identityFrom(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respondError(r.Context(), w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return id, true
}
