package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/repository"
)

type UserRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) Get(ctx context.Context, uid string) (*model.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %s: %w", uid, err)
	}

	var user model.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", uid, err)
	}
	user.ID = snap.Ref.ID
	return &user, nil
}

func (r *UserRepository) Set(ctx context.Context, uid string, user *model.User) error {
	if _, err := r.client.Collection(usersCollection).Doc(uid).Set(ctx, user); err != nil {
		return fmt.Errorf("failed to set user %s: %w", uid, err)
	}
	return nil
}
