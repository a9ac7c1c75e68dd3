package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/4NDrew-42/ArtCine/internal/domain/entity"
	repo "github.com/4NDrew-42/ArtCine/internal/domain/repository"
	"github.com/4NDrew-42/ArtCine/pkg/helpers"
)

// MovieService serves the read-mostly catalog, with a Redis read-through
// cache in front of the store. The cache holds catalog data only, never
// anything auth-related.
type MovieService struct {
	Repo     repo.MovieRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewMovieService(r repo.MovieRepository, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *MovieService {
	return &MovieService{Repo: r, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

const moviesCacheKey = "movies:all"

func movieCacheKey(title string) string { return "movies:title:" + title }

func (s *MovieService) List(ctx context.Context) ([]*entity.Movie, error) {
	if s.Redis != nil {
		var cached []*entity.Movie
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, moviesCacheKey, &cached); err == nil && ok {
			return cached, nil
		} else if err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("movie cache read failed")
		}
	}
	movies, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, moviesCacheKey, movies, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("movie cache write failed")
		}
	}
	return movies, nil
}

func (s *MovieService) GetByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	if s.Redis != nil {
		var cached entity.Movie
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, movieCacheKey(title), &cached); err == nil && ok {
			return &cached, nil
		}
	}
	m, err := s.Repo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	if s.Redis != nil {
		_ = helpers.RedisSetJSON(ctx, s.Redis, movieCacheKey(title), m, s.CacheTTL)
	}
	return m, nil
}

func (s *MovieService) GetGenreByName(ctx context.Context, name string) (*entity.Genre, error) {
	g, err := s.Repo.GetGenreByName(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *MovieService) GetDirectorByName(ctx context.Context, name string) (*entity.Director, error) {
	d, err := s.Repo.GetDirectorByName(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrDirectorNotFound
		}
		return nil, err
	}
	return d, nil
}
