package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/chatpad-dev/chatpad/pkg/service/firebase"
)

// Firebase holds CLI flags for the identity verifier
type Firebase struct {
	projectID string
}

// Flags returns CLI flags for Firebase configuration
func (f *Firebase) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firebase-project-id",
			Usage:       "Firebase project ID used to verify ID tokens",
			Required:    true,
			Sources:     cli.EnvVars("CHATPAD_FIREBASE_PROJECT_ID"),
			Destination: &f.projectID,
		},
	}
}

// Configure creates the token verifier from the configured flags
func (f *Firebase) Configure(ctx context.Context) (*firebase.Verifier, error) {
	verifier, err := firebase.New(ctx, f.projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize firebase verifier",
			goerr.V("project_id", f.projectID))
	}
	return verifier, nil
}
