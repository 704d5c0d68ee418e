package user

import (
	"context"
	"fmt"

	"github.com/teleclinic/telemed-api/internal/identity"
	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/repository"
	"github.com/teleclinic/telemed-api/pkg/apperror"
)

type UserService interface {
	// CreateAccount registers the account with the identity provider
	// and stores the profile with the requested role. Returns the
	// provider uid.
	CreateAccount(ctx context.Context, req *model.CreateUserRequest) (string, error)
}

type Service struct {
	provider identity.Provider
	users    repository.UserRepository
}

func NewService(provider identity.Provider, users repository.UserRepository) *Service {
	return &Service{
		provider: provider,
		users:    users,
	}
}

func (s *Service) CreateAccount(ctx context.Context, req *model.CreateUserRequest) (string, error) {
	if !req.Role.Valid() {
		return "", apperror.Invalid("role must be doctor or patient", nil)
	}

	uid, err := s.provider.CreateAccount(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create account: %w", err)
	}

	// Signup is the only path that may pick the doctor role; lazily
	// provisioned users always start as patients.
	user := &model.User{
		ID:    uid,
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	}
	if err := s.users.Set(ctx, uid, user); err != nil {
		return "", fmt.Errorf("failed to store user profile: %w", err)
	}

	return uid, nil
}
