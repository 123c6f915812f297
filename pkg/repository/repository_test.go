package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/repository/firestore"
	"github.com/chatpad-dev/chatpad/pkg/repository/memory"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
)

// newMemoryRepo returns a fresh in-memory repository
func newMemoryRepo(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

// newFirestoreRepo returns a Firestore-backed repository with an isolated
// collection prefix. Skips unless FIRESTORE_PROJECT_ID is set.
func newFirestoreRepo(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("FIRESTORE_DATABASE_ID")

	repo, err := firestore.New(context.Background(), projectID, databaseID,
		firestore.WithCollectionPrefix("test_"+uuid.New().String()[:8]),
	)
	gt.NoError(t, err).Required()
	return repo
}
