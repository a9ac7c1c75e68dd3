package repository

import (
	"context"

	"github.com/4NDrew-42/ArtCine/internal/domain/entity"
)

// UserRepository is the credential store consumed by the auth layer and the
// user self-service operations. Username uniqueness is enforced by the store
// itself; Create returns ErrDuplicateUsername on conflict so two concurrent
// registrations cannot both succeed.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) (bool, error)
	AddFavorite(ctx context.Context, userID, movieID string) error
	RemoveFavorite(ctx context.Context, userID, movieID string) error
}
