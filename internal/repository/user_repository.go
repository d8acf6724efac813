package repository

import (
	"context"
	"database/sql"
	"errors"

	"doc-processor/internal/domain"

	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a PostgreSQL-backed user repository.
func NewUserRepository(db *sqlx.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3) RETURNING id`

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, user.Username, user.Password, user.Role).Scan(&id); err != nil {
		return nil, err
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username, password, role FROM users WHERE username = $1`
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	if err := r.db.GetContext(ctx, &exists, query, username); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *userRepository) FindFirstByRole(ctx context.Context, role domain.Role) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username, password, role FROM users WHERE role = $1 ORDER BY id LIMIT 1`
	if err := r.db.GetContext(ctx, &user, query, role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
