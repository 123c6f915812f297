package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newUserRepository(client *firestore.Client) *userRepository {
	return &userRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *userRepository) usersCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_users"
	}
	return "users"
}

func (r *userRepository) Put(ctx context.Context, user *model.User) error {
	docRef := r.client.Collection(r.usersCollection()).Doc(user.UID.String())

	stored := *user
	if snap, err := docRef.Get(ctx); err == nil {
		// Merge semantics: an existing account keeps its creation time
		var existing model.User
		if err := snap.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to decode user", goerr.V("uid", user.UID))
		}
		stored.CreatedAt = existing.CreatedAt
	} else if status.Code(err) != codes.NotFound {
		return goerr.Wrap(err, "failed to check user existence", goerr.V("uid", user.UID))
	}

	if _, err := docRef.Set(ctx, &stored); err != nil {
		return goerr.Wrap(err, "failed to put user", goerr.V("uid", user.UID))
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, uid types.UserID) (*model.User, error) {
	snap, err := r.client.Collection(r.usersCollection()).Doc(uid.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("uid", uid))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("uid", uid))
	}

	var user model.User
	if err := snap.DataTo(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user", goerr.V("uid", uid))
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	iter := r.client.Collection(r.usersCollection()).
		Where("Email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("email", email))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query user by email", goerr.V("email", email))
	}

	var user model.User
	if err := snap.DataTo(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user", goerr.V("doc_id", snap.Ref.ID))
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	docRef := r.client.Collection(r.usersCollection()).Doc(user.UID.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "user not found", goerr.V("uid", user.UID))
		}
		return goerr.Wrap(err, "failed to check user existence", goerr.V("uid", user.UID))
	}

	if _, err := docRef.Set(ctx, user); err != nil {
		return goerr.Wrap(err, "failed to update user", goerr.V("uid", user.UID))
	}
	return nil
}
