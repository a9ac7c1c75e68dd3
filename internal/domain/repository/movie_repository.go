package repository

import (
	"context"

	"github.com/4NDrew-42/ArtCine/internal/domain/entity"
)

// MovieRepository serves the read-only movie catalog.
type MovieRepository interface {
	List(ctx context.Context) ([]*entity.Movie, error)
	GetByTitle(ctx context.Context, title string) (*entity.Movie, error)
	GetGenreByName(ctx context.Context, name string) (*entity.Genre, error)
	GetDirectorByName(ctx context.Context, name string) (*entity.Director, error)
}
