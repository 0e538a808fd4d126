package postgres

import (
	"context"
	"errors"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, auth0_id, email, name, created_at
		FROM users
		WHERE id = $1`

	user := &domain.User{}
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&user.ID, &user.Auth0ID, &user.Email, &user.Name, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetByAuth0ID retrieves a user by Auth0 subject
func (r *UserRepository) GetByAuth0ID(auth0ID string) (*domain.User, error) {
	query := `
		SELECT id, auth0_id, email, name, created_at
		FROM users
		WHERE auth0_id = $1`

	user := &domain.User{}
	err := r.pool.QueryRow(context.Background(), query, auth0ID).Scan(
		&user.ID, &user.Auth0ID, &user.Email, &user.Name, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CreateOrGetByAuth0ID creates a user row on first login, or returns the
// existing one
func (r *UserRepository) CreateOrGetByAuth0ID(auth0ID, email string, name *string) (*domain.User, error) {
	query := `
		INSERT INTO users (id, auth0_id, email, name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (auth0_id) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, auth0_id, email, name, created_at`

	user := &domain.User{}
	err := r.pool.QueryRow(context.Background(), query, uuid.New(), auth0ID, email, name).Scan(
		&user.ID, &user.Auth0ID, &user.Email, &user.Name, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
