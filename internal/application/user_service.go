package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/4NDrew-42/ArtCine/internal/domain/entity"
	repo "github.com/4NDrew-42/ArtCine/internal/domain/repository"
	"github.com/4NDrew-42/ArtCine/pkg/helpers"
)

// UserService covers registration and the self-service operations. Ownership
// of the target user is enforced by the HTTP layer before any of the mutating
// methods here are reached.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger}
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// UpdateInput carries optional replacement fields; nil means keep current.
type UpdateInput struct {
	Username *string
	Password *string
	Email    *string
	Birthday *time.Time
}

// Register creates a new user with a hashed password. Username uniqueness is
// enforced by the store; a conflict surfaces as ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Birthday:     in.Birthday,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]*entity.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Update applies the provided fields to the user addressed by username.
// A new password is re-hashed before storage.
func (s *UserService) Update(ctx context.Context, username string, in UpdateInput) (*entity.User, error) {
	u, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Birthday != nil {
		u.Birthday = in.Birthday
	}
	if in.Password != nil {
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	u, err := s.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	ok, err := s.Repo.Delete(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !ok {
		return ErrUserNotFound
	}
	if s.Logger != nil {
		s.Logger.WithField("username", username).Info("user deleted")
	}
	return nil
}

// AddFavorite records a movie on the user's favorites list. Adding a movie
// that is already listed is a no-op success.
func (s *UserService) AddFavorite(ctx context.Context, username, movieID string) (*entity.User, error) {
	u, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.AddFavorite(ctx, u.ID, movieID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	return s.GetByUsername(ctx, username)
}

// RemoveFavorite drops a movie from the favorites list; removing a movie
// that is not listed is a no-op success.
func (s *UserService) RemoveFavorite(ctx context.Context, username, movieID string) (*entity.User, error) {
	u, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.RemoveFavorite(ctx, u.ID, movieID); err != nil {
		return nil, fmt.Errorf("remove favorite: %w", err)
	}
	return s.GetByUsername(ctx, username)
}
