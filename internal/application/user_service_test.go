package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4NDrew-42/ArtCine/internal/mocks"
	"github.com/4NDrew-42/ArtCine/pkg/helpers"
)

func newUserFixture() (*UserService, *mocks.UserRepository) {
	repo := mocks.NewUserRepository()
	return NewUserService(repo, nil), repo
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, _ := newUserFixture()

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Password: "password1", Email: "alice@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	assert.NotEqual(t, "password1", u.PasswordHash)

	ok, err := helpers.VerifyPassword(u.PasswordHash, "password1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "password1", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "password2", Email: "b@example.com"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUpdateFields(t *testing.T) {
	svc, _ := newUserFixture()
	birthday := time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)

	orig, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "password1", Email: "a@example.com"})
	require.NoError(t, err)

	email := "new@example.com"
	password := "password-two"
	u, err := svc.Update(context.Background(), "alice", UpdateInput{Email: &email, Password: &password, Birthday: &birthday})
	require.NoError(t, err)

	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, email, u.Email)
	require.NotNil(t, u.Birthday)
	assert.True(t, birthday.Equal(*u.Birthday))
	assert.NotEqual(t, orig.PasswordHash, u.PasswordHash)

	ok, err := helpers.VerifyPassword(u.PasswordHash, password)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdateUnknownUser(t *testing.T) {
	svc, _ := newUserFixture()

	email := "new@example.com"
	_, err := svc.Update(context.Background(), "nobody", UpdateInput{Email: &email})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "password1", Email: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "alice"))

	_, err = svc.GetByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "alice"), ErrUserNotFound)
}

func TestFavorites(t *testing.T) {
	svc, repo := newUserFixture()
	repo.ValidMovies = map[string]bool{"movie-1": true, "movie-2": true}

	_, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "password1", Email: "a@example.com"})
	require.NoError(t, err)

	u, err := svc.AddFavorite(context.Background(), "alice", "movie-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"movie-1"}, u.FavoriteMovies)

	// Re-adding is a no-op success.
	u, err = svc.AddFavorite(context.Background(), "alice", "movie-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"movie-1"}, u.FavoriteMovies)

	_, err = svc.AddFavorite(context.Background(), "alice", "no-such-movie")
	assert.ErrorIs(t, err, ErrMovieNotFound)

	u, err = svc.RemoveFavorite(context.Background(), "alice", "movie-1")
	require.NoError(t, err)
	assert.Empty(t, u.FavoriteMovies)

	// Removing an absent favorite is also a no-op success.
	_, err = svc.RemoveFavorite(context.Background(), "alice", "movie-2")
	assert.NoError(t, err)
}
