package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Login verifies the ID token and upserts the account. An existing
// account keeps its CreatedAt; profile fields from the provider are
// merged in. Returns the stored user.
func (uc *UseCases) Login(ctx context.Context, idToken string) (*model.User, error) {
	if idToken == "" {
		return nil, goerr.Wrap(ErrUnauthenticated, "ID token is required")
	}

	claims, err := uc.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, goerr.Wrap(ErrUnauthenticated, "failed to verify ID token")
	}

	uid := types.UserID(claims.UID)

	displayName := claims.Name
	if displayName == "" && claims.Email != "" {
		displayName = strings.SplitN(claims.Email, "@", 2)[0]
	}

	user := &model.User{
		UID:         uid,
		Email:       claims.Email,
		DisplayName: displayName,
		PhotoURL:    claims.Picture,
		CreatedAt:   uc.now(),
	}
	if err := uc.repo.User().Put(ctx, user); err != nil {
		return nil, goerr.Wrap(err, "failed to upsert user", goerr.V("uid", uid))
	}

	stored, err := uc.repo.User().Get(ctx, uid)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load user after login", goerr.V("uid", uid))
	}
	return stored, nil
}

// GetProfile returns the caller's account
func (uc *UseCases) GetProfile(ctx context.Context, uid types.UserID) (*model.User, error) {
	user, err := uc.repo.User().Get(ctx, uid)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("uid", uid))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("uid", uid))
	}
	return user, nil
}

// UpdateProfile applies a partial profile mutation and returns the
// updated account. An empty update reads back the current profile
// without a write.
func (uc *UseCases) UpdateProfile(ctx context.Context, uid types.UserID, update model.ProfileUpdate) (*model.User, error) {
	user, err := uc.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	if update.IsEmpty() {
		return user, nil
	}

	update.Apply(user)
	if err := uc.repo.User().Update(ctx, user); err != nil {
		return nil, goerr.Wrap(err, "failed to update user", goerr.V("uid", uid))
	}
	return user, nil
}
