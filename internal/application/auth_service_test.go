package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4NDrew-42/ArtCine/internal/domain/entity"
	"github.com/4NDrew-42/ArtCine/internal/mocks"
	"github.com/4NDrew-42/ArtCine/pkg/helpers"
)

func newAuthFixture(t *testing.T, ttl time.Duration) (*AuthService, *mocks.UserRepository, *entity.User) {
	t.Helper()
	repo := mocks.NewUserRepository()
	hash, err := helpers.HashPassword("password1")
	require.NoError(t, err)
	u := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: hash}
	require.NoError(t, repo.Create(context.Background(), u))

	svc := NewAuthService(repo, helpers.NewJWTManager("test-secret", ttl), nil)
	return svc, repo, u
}

func TestAuthenticateSuccess(t *testing.T) {
	svc, _, u := newAuthFixture(t, time.Hour)

	got, err := svc.Authenticate(context.Background(), "alice", "password1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t, time.Hour)

	_, err := svc.Authenticate(context.Background(), "alice", "password2")
	assert.ErrorIs(t, err, ErrBadPassword)
}

func TestAuthenticateUnknownUsername(t *testing.T) {
	svc, _, _ := newAuthFixture(t, time.Hour)

	_, err := svc.Authenticate(context.Background(), "nobody", "password1")
	assert.ErrorIs(t, err, ErrBadUsername)
}

func TestAuthenticateStoreUnavailable(t *testing.T) {
	svc, repo, _ := newAuthFixture(t, time.Hour)
	repo.Err = assert.AnError

	_, err := svc.Authenticate(context.Background(), "alice", "password1")
	require.Error(t, err)
	// Infrastructure trouble must not look like bad credentials.
	assert.NotErrorIs(t, err, ErrBadUsername)
	assert.NotErrorIs(t, err, ErrBadPassword)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAuthenticateMalformedDigest(t *testing.T) {
	svc, repo, u := newAuthFixture(t, time.Hour)
	u.PasswordHash = "corrupted"
	require.NoError(t, repo.Update(context.Background(), u))

	_, err := svc.Authenticate(context.Background(), "alice", "password1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadPassword)
}

func TestLoginResolveRoundTrip(t *testing.T) {
	svc, _, u := newAuthFixture(t, time.Hour)

	_, token, exp, err := svc.Login(context.Background(), "alice", "password1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	got, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
}

func TestResolveExpiredToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t, -time.Minute)

	_, token, _, err := svc.Login(context.Background(), "alice", "password1")
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, helpers.ErrExpiredToken)
}

func TestResolveDeletedIdentity(t *testing.T) {
	svc, repo, u := newAuthFixture(t, time.Hour)

	_, token, _, err := svc.Login(context.Background(), "alice", "password1")
	require.NoError(t, err)

	ok, err := repo.Delete(context.Background(), u.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// The token is still signed and unexpired, but its subject is gone; it
	// must not resolve to a phantom identity.
	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestResolveGarbageToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t, time.Hour)

	_, err := svc.Resolve(context.Background(), "garbage")
	assert.ErrorIs(t, err, helpers.ErrMalformedToken)
}
