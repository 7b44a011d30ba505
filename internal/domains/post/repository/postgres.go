package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	p "devnetwork-backend/internal/domains/post"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) p.Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts a new post
func (r *postgresRepository) Create(ctx context.Context, post *p.Post) error {
	query := `
    INSERT INTO posts (id, user_id, name, avatar, text, created_at)
    VALUES ($1, $2, $3, $4, $5, NOW())
    RETURNING created_at
  `

	err := r.pool.QueryRow(ctx, query,
		post.ID, post.UserID, post.Name, post.Avatar, post.Text,
	).Scan(&post.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	return nil
}

// FindAll retrieves every post, newest first
func (r *postgresRepository) FindAll(ctx context.Context) ([]*p.Post, error) {
	query := `
    SELECT id, user_id, name, avatar, text, created_at
    FROM posts
    ORDER BY created_at DESC
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*p.Post, 0)
	for rows.Next() {
		var post p.Post
		if err := rows.Scan(&post.ID, &post.UserID, &post.Name, &post.Avatar, &post.Text, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

// FindByID retrieves one post
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*p.Post, error) {
	query := `
    SELECT id, user_id, name, avatar, text, created_at
    FROM posts
    WHERE id = $1
  `

	var post p.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.UserID, &post.Name, &post.Avatar, &post.Text, &post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, p.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	return &post, nil
}

// Delete removes one post
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return p.ErrPostNotFound
	}
	return nil
}

// DeleteByAuthor removes every post by one identity
func (r *postgresRepository) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE user_id = $1`, authorID); err != nil {
		return fmt.Errorf("delete posts by author: %w", err)
	}
	return nil
}
