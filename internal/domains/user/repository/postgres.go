package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	u "devnetwork-backend/internal/domains/user"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) u.Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts a new user record
func (r *postgresRepository) Create(ctx context.Context, usr *u.User) error {
	query := `
    INSERT INTO users (id, name, email, password_hash, avatar, created_at)
    VALUES ($1, $2, $3, $4, $5, NOW())
    RETURNING created_at
  `

	err := r.pool.QueryRow(ctx, query,
		usr.ID, usr.Name, usr.Email, usr.PasswordHash, usr.Avatar,
	).Scan(&usr.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return u.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// FindByID retrieves a user by ID
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*u.User, error) {
	query := `
    SELECT id, name, email, password_hash, avatar, created_at
    FROM users
    WHERE id = $1
  `

	var usr u.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&usr.ID, &usr.Name, &usr.Email, &usr.PasswordHash, &usr.Avatar, &usr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, u.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	return &usr, nil
}

// FindByEmail retrieves a user by email (used for login)
func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*u.User, error) {
	query := `
    SELECT id, name, email, password_hash, avatar, created_at
    FROM users
    WHERE email = $1
  `

	var usr u.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&usr.ID, &usr.Name, &usr.Email, &usr.PasswordHash, &usr.Avatar, &usr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, u.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return &usr, nil
}

// ExistsByEmail checks for a registered email
func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

// Delete removes the user row
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return u.ErrUserNotFound
	}
	return nil
}
