// Package auth implements the gate between bearer tokens and local
// user profiles.
package auth

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/teleclinic/telemed-api/internal/identity"
	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/repository"
	"github.com/teleclinic/telemed-api/pkg/apperror"
)

// Resolution is the outcome of resolving a bearer token: the caller's
// profile and whether this call provisioned it.
type Resolution struct {
	User    *model.User
	Created bool
}

type AuthService interface {
	// Resolve verifies the token and returns the stored profile,
	// lazily provisioning it on first sight of the identity. Every
	// failure on this path surfaces as Unauthenticated; the cause is
	// logged, never exposed.
	Resolve(ctx context.Context, token string) (*Resolution, error)
}

type Service struct {
	provider identity.Provider
	users    repository.UserRepository
	logger   zerolog.Logger
}

func NewService(provider identity.Provider, users repository.UserRepository, logger zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		users:    users,
		logger:   logger,
	}
}

func (s *Service) Resolve(ctx context.Context, token string) (*Resolution, error) {
	uid, err := s.provider.VerifyToken(ctx, token)
	if err != nil {
		s.logger.Debug().Err(err).Msg("token verification failed")
		return nil, apperror.Unauthenticated(err)
	}

	user, err := s.users.Get(ctx, uid)
	if err == nil {
		// Stored profile is authoritative after first provisioning:
		// role and name are never re-synced from the provider.
		return &Resolution{User: user}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error().Err(err).Str("uid", uid).Msg("user lookup failed")
		return nil, apperror.Unauthenticated(err)
	}

	return s.provision(ctx, uid)
}

func (s *Service) provision(ctx context.Context, uid string) (*Resolution, error) {
	profile, err := s.provider.GetProfile(ctx, uid)
	if err != nil {
		s.logger.Error().Err(err).Str("uid", uid).Msg("profile fetch failed")
		return nil, apperror.Unauthenticated(err)
	}

	name := profile.DisplayName
	if name == "" {
		name = profile.Email
	}

	user := &model.User{
		ID:    uid,
		Email: profile.Email,
		Name:  name,
		Role:  model.RolePatient,
	}
	if err := s.users.Set(ctx, uid, user); err != nil {
		s.logger.Error().Err(err).Str("uid", uid).Msg("user provisioning failed")
		return nil, apperror.Unauthenticated(err)
	}

	s.logger.Info().Str("uid", uid).Msg("provisioned new user")
	return &Resolution{User: user, Created: true}, nil
}
