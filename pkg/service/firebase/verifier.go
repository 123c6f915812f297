package firebase

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Verifier validates Firebase ID tokens via the Admin SDK. Credentials
// are resolved by the SDK from the environment (application default
// credentials).
type Verifier struct {
	client *auth.Client
}

var _ interfaces.IdentityVerifier = &Verifier{}

// New creates a verifier for the given Firebase project
func New(ctx context.Context, projectID string) (*Verifier, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize firebase app",
			goerr.V("projectID", projectID))
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firebase auth client")
	}

	return &Verifier{client: client}, nil
}

// Verify checks the ID token and returns the identity claims. Any
// verification failure (expired, malformed, wrong audience) is returned
// as an error; the caller maps it to Unauthenticated.
func (v *Verifier) Verify(ctx context.Context, idToken string) (*interfaces.IdentityClaims, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to verify ID token")
	}

	claims := &interfaces.IdentityClaims{
		UID: token.UID,
	}
	if email, ok := token.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		claims.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		claims.Picture = picture
	}

	return claims, nil
}
