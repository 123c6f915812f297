package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func runUserRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put then Get round-trips the user", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		user := &model.User{
			UID:         "uid-alice",
			Email:       "alice@example.com",
			DisplayName: "Alice",
			PhotoURL:    "https://example.com/alice.png",
			CreatedAt:   time.Now().UTC(),
		}
		gt.NoError(t, repo.User().Put(ctx, user)).Required()

		got, err := repo.User().Get(ctx, "uid-alice")
		gt.NoError(t, err).Required()
		gt.Value(t, got.Email).Equal(user.Email)
		gt.Value(t, got.DisplayName).Equal(user.DisplayName)
		gt.Bool(t, got.IsAnonymousEnabled).False()
	})

	t.Run("Put merges and keeps original CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		firstLogin := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		gt.NoError(t, repo.User().Put(ctx, &model.User{
			UID:       "uid-bob",
			Email:     "bob@example.com",
			CreatedAt: firstLogin,
		})).Required()

		gt.NoError(t, repo.User().Put(ctx, &model.User{
			UID:         "uid-bob",
			Email:       "bob@example.com",
			DisplayName: "Bob",
			CreatedAt:   time.Now().UTC(),
		})).Required()

		got, err := repo.User().Get(ctx, "uid-bob")
		gt.NoError(t, err).Required()
		gt.Value(t, got.DisplayName).Equal("Bob")
		gt.Bool(t, got.CreatedAt.Equal(firstLogin)).True()
	})

	t.Run("Get returns ErrNotFound for unknown user", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.User().Get(ctx, "uid-nobody")
		gt.Error(t, err)
	})

	t.Run("GetByEmail finds the user", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.User().Put(ctx, &model.User{
			UID:   "uid-carol",
			Email: "carol@example.com",
		})).Required()

		got, err := repo.User().GetByEmail(ctx, "carol@example.com")
		gt.NoError(t, err).Required()
		gt.Value(t, got.UID).Equal(types.UserID("uid-carol"))
	})

	t.Run("GetByEmail returns ErrNotFound for unknown email", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.User().GetByEmail(ctx, "stranger@example.com")
		gt.Error(t, err)
	})

	t.Run("Update overwrites the whole document", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.User().Put(ctx, &model.User{
			UID:   "uid-dave",
			Email: "dave@example.com",
		})).Required()

		got, err := repo.User().Get(ctx, "uid-dave")
		gt.NoError(t, err).Required()

		got.IsAnonymousEnabled = true
		gt.NoError(t, repo.User().Update(ctx, got)).Required()

		updated, err := repo.User().Get(ctx, "uid-dave")
		gt.NoError(t, err).Required()
		gt.Bool(t, updated.IsAnonymousEnabled).True()
		gt.Value(t, updated.Email).Equal("dave@example.com")
	})

	t.Run("Update on missing user fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.User().Update(ctx, &model.User{UID: "uid-ghost"})
		gt.Error(t, err)
	})
}

func TestUserRepository_Memory(t *testing.T) {
	runUserRepositoryTest(t, newMemoryRepo)
}

func TestUserRepository_Firestore(t *testing.T) {
	runUserRepositoryTest(t, newFirestoreRepo)
}
