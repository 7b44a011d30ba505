package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the post store contract.
// DeleteByAuthor feeds the account-removal cascade in the profile domain.
type Repository interface {
	Create(ctx context.Context, p *Post) error

	// FindAll returns every post, newest first
	FindAll(ctx context.Context) ([]*Post, error)

	// FindByID returns ErrPostNotFound when no post matches
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// Delete returns ErrPostNotFound when no post matches
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByAuthor removes every post by one identity.
	// Zero matches is not an error.
	DeleteByAuthor(ctx context.Context, authorID uuid.UUID) error
}

// Service defines post business logic
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req CreatePostRequest) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// Delete removes the post if the caller owns it.
	// Returns ErrNotAuthorized for anyone else's post.
	Delete(ctx context.Context, userID, postID uuid.UUID) error
}
