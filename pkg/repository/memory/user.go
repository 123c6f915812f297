package memory

import (
	"context"
	"sync"

	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[types.UserID]*model.User
}

func newUserRepository() *userRepository {
	return &userRepository{
		users: make(map[types.UserID]*model.User),
	}
}

func copyUser(u *model.User) *model.User {
	copied := *u
	return &copied
}

func (r *userRepository) Put(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyUser(user)
	if existing, ok := r.users[user.UID]; ok {
		// Merge semantics: keep the original creation time
		stored.CreatedAt = existing.CreatedAt
	}
	r.users[user.UID] = stored
	return nil
}

func (r *userRepository) Get(ctx context.Context, uid types.UserID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[uid]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("uid", uid))
	}
	return copyUser(user), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("email", email))
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UID]; !ok {
		return goerr.Wrap(ErrNotFound, "user not found", goerr.V("uid", user.UID))
	}
	r.users[user.UID] = copyUser(user)
	return nil
}
