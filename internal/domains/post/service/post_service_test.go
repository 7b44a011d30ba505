package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devnetwork-backend/internal/domains/post"
	"devnetwork-backend/internal/domains/user"
)

type memPostRepo struct {
	posts map[uuid.UUID]*post.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[uuid.UUID]*post.Post)}
}

func (m *memPostRepo) Create(_ context.Context, p *post.Post) error {
	p.CreatedAt = time.Now()
	cp := *p
	m.posts[p.ID] = &cp
	return nil
}

func (m *memPostRepo) FindAll(context.Context) ([]*post.Post, error) {
	out := make([]*post.Post, 0, len(m.posts))
	for _, p := range m.posts {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memPostRepo) FindByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memPostRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.posts[id]; !ok {
		return post.ErrPostNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *memPostRepo) DeleteByAuthor(_ context.Context, authorID uuid.UUID) error {
	for id, p := range m.posts {
		if p.UserID == authorID {
			delete(m.posts, id)
		}
	}
	return nil
}

type stubUserRepo struct {
	users map[uuid.UUID]*user.User
}

func (s *stubUserRepo) Create(context.Context, *user.User) error { return nil }

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) FindByEmail(context.Context, string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (s *stubUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

func (s *stubUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

func TestCreatePostDenormalizesAuthor(t *testing.T) {
	authorID := uuid.New()
	users := &stubUserRepo{users: map[uuid.UUID]*user.User{
		authorID: {ID: authorID, Name: "Jane", Avatar: "https://example.com/a.png"},
	}}
	svc := NewPostService(newMemPostRepo(), users)

	p, err := svc.Create(context.Background(), authorID, post.CreatePostRequest{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", p.Name)
	assert.Equal(t, "https://example.com/a.png", p.Avatar)
	assert.Equal(t, authorID, p.UserID)
}

func TestDeletePostOwnershipCheck(t *testing.T) {
	authorID := uuid.New()
	users := &stubUserRepo{users: map[uuid.UUID]*user.User{
		authorID: {ID: authorID, Name: "Jane"},
	}}
	repo := newMemPostRepo()
	svc := NewPostService(repo, users)
	ctx := context.Background()

	p, err := svc.Create(ctx, authorID, post.CreatePostRequest{Text: "hello"})
	require.NoError(t, err)

	err = svc.Delete(ctx, uuid.New(), p.ID)
	assert.ErrorIs(t, err, post.ErrNotAuthorized)

	require.NoError(t, svc.Delete(ctx, authorID, p.ID))

	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestDeleteUnknownPost(t *testing.T) {
	svc := NewPostService(newMemPostRepo(), &stubUserRepo{})

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}
