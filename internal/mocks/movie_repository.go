package mocks

import (
	"context"

	"github.com/4NDrew-42/ArtCine/internal/domain/entity"
	"github.com/4NDrew-42/ArtCine/internal/domain/repository"
)

// MovieRepository is an in-memory repository.MovieRepository backed by a
// fixed slice of movies.
type MovieRepository struct {
	Movies []*entity.Movie
	Err    error

	// ListCalls counts trips to the underlying store, letting cache tests
	// observe read-through behavior.
	ListCalls int
}

func (m *MovieRepository) List(ctx context.Context) ([]*entity.Movie, error) {
	m.ListCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]*entity.Movie(nil), m.Movies...), nil
}

func (m *MovieRepository) GetByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, mv := range m.Movies {
		if mv.Title == title {
			cp := *mv
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MovieRepository) GetGenreByName(ctx context.Context, name string) (*entity.Genre, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, mv := range m.Movies {
		if mv.Genre.Name == name {
			g := mv.Genre
			return &g, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MovieRepository) GetDirectorByName(ctx context.Context, name string) (*entity.Director, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, mv := range m.Movies {
		if mv.Director.Name == name {
			d := mv.Director
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

var _ repository.MovieRepository = (*MovieRepository)(nil)
