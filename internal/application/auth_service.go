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

// AuthService implements the credential verification, token issuance and
// token resolution flows. No lockout or throttling on repeated failures;
// that is a known hardening gap, left out so the observable contract stays
// unchanged.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Authenticate resolves a username/password pair to the stored user.
// The two failure modes are logged distinctly but both surface to the HTTP
// layer as the same generic message.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			s.log().WithField("username", username).Info("login failed: unknown username")
			return nil, ErrBadUsername
		}
		return nil, fmt.Errorf("credential store lookup: %w", err)
	}

	ok, err := helpers.VerifyPassword(u.PasswordHash, password)
	if err != nil {
		// Stored digest is unusable; this is a data problem, not a wrong
		// password.
		return nil, fmt.Errorf("verify password digest for %q: %w", username, err)
	}
	if !ok {
		s.log().WithField("username", username).Info("login failed: incorrect password")
		return nil, ErrBadPassword
	}
	return u, nil
}

// IssueToken mints a signed bearer token for the user, expiring TokenTTL
// from now.
func (s *AuthService) IssueToken(u *entity.User) (string, time.Time, error) {
	token, exp, err := s.JWT.Issue(u.ID, u.Username)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token for %q: %w", u.Username, err)
	}
	return token, exp, nil
}

// Login is Authenticate followed by IssueToken.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.IssueToken(u)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.log().WithField("username", u.Username).Debug("login succeeded")
	return u, token, exp, nil
}

// Resolve validates a bearer token and maps it back to a live identity.
// Checks run in order: well-formedness, signature, expiry (inside Parse),
// then a lookup against the credential store so a token for a deleted user
// never resolves to a phantom identity.
func (s *AuthService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("credential store lookup: %w", err)
	}
	return u, nil
}

func (s *AuthService) log() *logrus.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logrus.StandardLogger()
}
