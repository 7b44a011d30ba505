package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"devnetwork-backend/internal/domains/post"
	"devnetwork-backend/internal/domains/user"
)

// postService implements post.Service
type postService struct {
	repo  post.Repository
	users user.Repository
}

func NewPostService(repo post.Repository, users user.Repository) post.Service {
	return &postService{repo: repo, users: users}
}

// Create stores a new post with the author's name and avatar denormalized
func (s *postService) Create(ctx context.Context, userID uuid.UUID, req post.CreatePostRequest) (*post.Post, error) {
	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &post.Post{
		ID:     uuid.New(),
		UserID: author.ID,
		Name:   author.Name,
		Avatar: author.Avatar,
		Text:   req.Text,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// List returns every post, newest first
func (s *postService) List(ctx context.Context) ([]*post.Post, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns one post
func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Delete removes the post if the caller owns it
func (s *postService) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	if p.UserID != userID {
		return post.ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, postID); err != nil && !errors.Is(err, post.ErrPostNotFound) {
		return err
	}
	return nil
}
