package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/4NDrew-42/ArtCine/internal/domain/entity"
	"github.com/4NDrew-42/ArtCine/internal/domain/repository"
)

type MovieRepository struct {
	pool *pgxpool.Pool
}

func NewMovieRepository(pool *pgxpool.Pool) *MovieRepository {
	return &MovieRepository{pool: pool}
}

const movieSelect = `
	SELECT id, title, description, genre_name, genre_description,
	       director_name, director_bio, director_birth, director_death,
	       actors, image_path, featured
	FROM movies
`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	m := &entity.Movie{}
	if err := row.Scan(&m.ID, &m.Title, &m.Description, &m.Genre.Name, &m.Genre.Description,
		&m.Director.Name, &m.Director.Bio, &m.Director.Birth, &m.Director.Death,
		&m.Actors, &m.ImagePath, &m.Featured); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *MovieRepository) List(ctx context.Context) ([]*entity.Movie, error) {
	rows, err := r.pool.Query(ctx, movieSelect+` ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func (r *MovieRepository) GetByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	row := r.pool.QueryRow(ctx, movieSelect+` WHERE title = $1`, title)
	return scanMovie(row)
}

func (r *MovieRepository) GetGenreByName(ctx context.Context, name string) (*entity.Genre, error) {
	g := &entity.Genre{}
	row := r.pool.QueryRow(ctx, `
		SELECT genre_name, genre_description FROM movies
		WHERE genre_name = $1
		LIMIT 1
	`, name)
	if err := row.Scan(&g.Name, &g.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *MovieRepository) GetDirectorByName(ctx context.Context, name string) (*entity.Director, error) {
	d := &entity.Director{}
	row := r.pool.QueryRow(ctx, `
		SELECT director_name, director_bio, director_birth, director_death FROM movies
		WHERE director_name = $1
		LIMIT 1
	`, name)
	if err := row.Scan(&d.Name, &d.Bio, &d.Birth, &d.Death); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

var _ repository.MovieRepository = (*MovieRepository)(nil)
