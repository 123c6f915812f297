package auth

import (
	"context"

	"github.com/chatpad-dev/chatpad/pkg/domain/types"
)

// Identity is the authenticated caller resolved from a verified bearer
// token. It carries only the claims the handlers need.
type Identity struct {
	UID   types.UserID
	Email string
}

type ctxIdentityKey struct{}

// ContextWithIdentity embeds the identity into the request context
func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxIdentityKey{}, id)
}

// IdentityFromContext extracts the identity from the context. The second
// return value is false when the request was not authenticated.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxIdentityKey{}).(*Identity)
	return id, ok
}
