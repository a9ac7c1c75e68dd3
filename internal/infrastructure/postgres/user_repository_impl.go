package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/4NDrew-42/ArtCine/internal/domain/entity"
	"github.com/4NDrew-42/ArtCine/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userSelect = `
	SELECT u.id, u.username, u.email, u.password_hash, u.birthday, u.created_at, u.updated_at,
	       coalesce(array_remove(array_agg(f.movie_id::text), NULL), '{}')
	FROM users u
	LEFT JOIN user_favorites f ON f.user_id = u.id
`

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Birthday,
		&u.CreatedAt, &u.UpdatedAt, &u.FavoriteMovies); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Create inserts a new user. The unique index on username makes concurrent
// registrations with the same name a store-level conflict rather than a
// check-then-insert race; the conflict surfaces as ErrDuplicateUsername.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, birthday)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.Username, u.Email, u.PasswordHash, u.Birthday)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isPgErrCode(err, codeUniqueViolation) {
			return repository.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, userSelect+` WHERE u.id = $1 GROUP BY u.id`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, userSelect+` WHERE u.username = $1 GROUP BY u.id`, username)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, userSelect+` GROUP BY u.id ORDER BY u.username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, password_hash = $3, birthday = $4, updated_at = $5
		WHERE id = $6
	`, u.Username, u.Email, u.PasswordHash, u.Birthday, u.UpdatedAt, u.ID)
	if err != nil {
		if isPgErrCode(err, codeUniqueViolation) {
			return repository.ErrDuplicateUsername
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// AddFavorite is idempotent: re-adding an existing favorite is a no-op.
// A missing movie violates the foreign key and maps to ErrNotFound.
func (r *UserRepository) AddFavorite(ctx context.Context, userID, movieID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_favorites (user_id, movie_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, movie_id) DO NOTHING
	`, userID, movieID)
	if isPgErrCode(err, codeForeignKeyViolation) {
		return repository.ErrNotFound
	}
	return err
}

func (r *UserRepository) RemoveFavorite(ctx context.Context, userID, movieID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM user_favorites WHERE user_id = $1 AND movie_id = $2
	`, userID, movieID)
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
