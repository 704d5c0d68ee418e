package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teleclinic/telemed-api/internal/identity"
	"github.com/teleclinic/telemed-api/internal/model"
	"github.com/teleclinic/telemed-api/internal/repository"
	"github.com/teleclinic/telemed-api/pkg/apperror"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *mockProvider) GetProfile(ctx context.Context, uid string) (*identity.Profile, error) {
	args := m.Called(ctx, uid)
	if p := args.Get(0); p != nil {
		return p.(*identity.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProvider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	args := m.Called(ctx, email, password, displayName)
	return args.String(0), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Get(ctx context.Context, uid string) (*model.User, error) {
	args := m.Called(ctx, uid)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Set(ctx context.Context, uid string, user *model.User) error {
	args := m.Called(ctx, uid, user)
	return args.Error(0)
}

func TestResolveInvalidToken(t *testing.T) {
	provider := new(mockProvider)
	users := new(mockUserRepo)
	provider.On("VerifyToken", mock.Anything, "bad-token").Return("", errors.New("token expired"))

	svc := NewService(provider, users, zerolog.Nop())
	_, err := svc.Resolve(context.Background(), "bad-token")

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthenticated))
	users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestResolveExistingUser(t *testing.T) {
	provider := new(mockProvider)
	users := new(mockUserRepo)

	stored := &model.User{ID: "uid-1", Email: "doc@example.com", Name: "Dr. Example", Role: model.RoleDoctor}
	provider.On("VerifyToken", mock.Anything, "good-token").Return("uid-1", nil)
	users.On("Get", mock.Anything, "uid-1").Return(stored, nil)

	svc := NewService(provider, users, zerolog.Nop())
	res, err := svc.Resolve(context.Background(), "good-token")

	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, stored, res.User)
	// The stored record is returned verbatim: no profile refresh.
	provider.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveProvisionsNewUser(t *testing.T) {
	provider := new(mockProvider)
	users := new(mockUserRepo)

	provider.On("VerifyToken", mock.Anything, "good-token").Return("uid-2", nil)
	users.On("Get", mock.Anything, "uid-2").Return(nil, repository.ErrNotFound)
	provider.On("GetProfile", mock.Anything, "uid-2").Return(&identity.Profile{
		UID:         "uid-2",
		Email:       "new@example.com",
		DisplayName: "New User",
	}, nil)
	users.On("Set", mock.Anything, "uid-2", mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RolePatient && u.Email == "new@example.com" && u.Name == "New User"
	})).Return(nil)

	svc := NewService(provider, users, zerolog.Nop())
	res, err := svc.Resolve(context.Background(), "good-token")

	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, model.RolePatient, res.User.Role)
	users.AssertNumberOfCalls(t, "Set", 1)
}

func TestResolveProvisionFallsBackToEmail(t *testing.T) {
	provider := new(mockProvider)
	users := new(mockUserRepo)

	provider.On("VerifyToken", mock.Anything, "t").Return("uid-3", nil)
	users.On("Get", mock.Anything, "uid-3").Return(nil, repository.ErrNotFound)
	provider.On("GetProfile", mock.Anything, "uid-3").Return(&identity.Profile{
		UID:   "uid-3",
		Email: "noname@example.com",
	}, nil)
	users.On("Set", mock.Anything, "uid-3", mock.MatchedBy(func(u *model.User) bool {
		return u.Name == "noname@example.com"
	})).Return(nil)

	svc := NewService(provider, users, zerolog.Nop())
	res, err := svc.Resolve(context.Background(), "t")

	require.NoError(t, err)
	assert.Equal(t, "noname@example.com", res.User.Name)
}

func TestResolveSecondCallReturnsFirstRecord(t *testing.T) {
	provider := new(mockProvider)
	users := new(mockUserRepo)

	provider.On("VerifyToken", mock.Anything, "t").Return("uid-4", nil)
	users.On("Get", mock.Anything, "uid-4").Return(nil, repository.ErrNotFound).Once()
	provider.On("GetProfile", mock.Anything, "uid-4").Return(&identity.Profile{
		UID:         "uid-4",
		Email:       "repeat@example.com",
		DisplayName: "Repeat",
	}, nil).Once()
	users.On("Set", mock.Anything, "uid-4", mock.Anything).Return(nil).Once()

	svc := NewService(provider, users, zerolog.Nop())
	first, err := svc.Resolve(context.Background(), "t")
	require.NoError(t, err)
	require.True(t, first.Created)

	users.On("Get", mock.Anything, "uid-4").Return(first.User, nil)

	second, err := svc.Resolve(context.Background(), "t")
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.User, second.User)
	users.AssertNumberOfCalls(t, "Set", 1)
}

func TestResolveStoreFailureIsUnauthenticated(t *testing.T) {
	provider := new(mockProvider)
	users := new(mockUserRepo)

	provider.On("VerifyToken", mock.Anything, "t").Return("uid-5", nil)
	users.On("Get", mock.Anything, "uid-5").Return(nil, errors.New("backend unavailable"))

	svc := NewService(provider, users, zerolog.Nop())
	_, err := svc.Resolve(context.Background(), "t")

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthenticated))
}
