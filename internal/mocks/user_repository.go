// Package mocks provides in-memory repository implementations for tests.
package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/4NDrew-42/ArtCine/internal/domain/entity"
	"github.com/4NDrew-42/ArtCine/internal/domain/repository"
)

// UserRepository is an in-memory repository.UserRepository. Setting Err makes
// every call fail with it, simulating an unreachable store.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]*entity.User // by id

	// ValidMovies, when non-nil, restricts AddFavorite to the listed ids,
	// mirroring the store's foreign key.
	ValidMovies map[string]bool

	Err error
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]*entity.User{}}
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	c.FavoriteMovies = append([]string(nil), u.FavoriteMovies...)
	return &c
}

func (m *UserRepository) Create(ctx context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return repository.ErrDuplicateUsername
		}
	}
	u.ID = uuid.NewString()
	m.users[u.ID] = copyUser(u)
	return nil
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyUser(u), nil
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, copyUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (m *UserRepository) Update(ctx context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range m.users {
		if id != u.ID && existing.Username == u.Username {
			return repository.ErrDuplicateUsername
		}
	}
	m.users[u.ID] = copyUser(u)
	return nil
}

func (m *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

func (m *UserRepository) AddFavorite(ctx context.Context, userID, movieID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	u, ok := m.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	if m.ValidMovies != nil && !m.ValidMovies[movieID] {
		return repository.ErrNotFound
	}
	for _, id := range u.FavoriteMovies {
		if id == movieID {
			return nil
		}
	}
	u.FavoriteMovies = append(u.FavoriteMovies, movieID)
	return nil
}

func (m *UserRepository) RemoveFavorite(ctx context.Context, userID, movieID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	u, ok := m.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	for i, id := range u.FavoriteMovies {
		if id == movieID {
			u.FavoriteMovies = append(u.FavoriteMovies[:i], u.FavoriteMovies[i+1:]...)
			break
		}
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
