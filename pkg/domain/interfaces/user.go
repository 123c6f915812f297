package interfaces

import (
	"context"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
)

// UserRepository persists user accounts keyed by provider UID
type UserRepository interface {
	// Put writes the user with merge semantics: an existing document keeps
	// fields the given user does not set (notably CreatedAt on re-login).
	Put(ctx context.Context, user *model.User) error

	// Get returns the user by UID, or ErrNotFound
	Get(ctx context.Context, uid types.UserID) (*model.User, error)

	// GetByEmail returns the first user matching the email, or ErrNotFound
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Update overwrites the stored user document
	Update(ctx context.Context, user *model.User) error
}
