package interfaces

import (
	"context"
)

// IdentityClaims are the claims returned by the identity provider for a
// verified token
type IdentityClaims struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

// IdentityVerifier validates an opaque bearer token against the external
// identity provider. Every request re-verifies; no local session state is
// kept.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*IdentityClaims, error)
}
