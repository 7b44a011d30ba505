package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devnetwork-backend/internal/domains/profile"
)

// memProfileRepo is an in-memory profile.Repository. Reads hand out deep
// copies so the service's read-modify-write path is exercised for real.
type memProfileRepo struct {
	profiles map[uuid.UUID]*profile.Profile
	updates  int
	creates  int
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[uuid.UUID]*profile.Profile)}
}

func copyProfile(p *profile.Profile) *profile.Profile {
	raw, _ := json.Marshal(p)
	var out profile.Profile
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (m *memProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return copyProfile(p), nil
}

func (m *memProfileRepo) FindAll(_ context.Context) ([]*profile.Profile, error) {
	out := make([]*profile.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, copyProfile(p))
	}
	return out, nil
}

func (m *memProfileRepo) Create(_ context.Context, p *profile.Profile) error {
	m.creates++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.profiles[p.User.ID] = copyProfile(p)
	return nil
}

func (m *memProfileRepo) Update(_ context.Context, p *profile.Profile) error {
	if _, ok := m.profiles[p.User.ID]; !ok {
		return profile.ErrProfileNotFound
	}
	m.updates++
	p.UpdatedAt = time.Now()
	m.profiles[p.User.ID] = copyProfile(p)
	return nil
}

func (m *memProfileRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	delete(m.profiles, userID)
	return nil
}

// cascadeRecorder records the order of account-cascade steps
type cascadeRecorder struct {
	calls    []string
	postsErr error
	userErr  error
}

func (r *cascadeRecorder) DeleteByAuthor(context.Context, uuid.UUID) error {
	r.calls = append(r.calls, "posts")
	return r.postsErr
}

func (r *cascadeRecorder) Delete(context.Context, uuid.UUID) error {
	r.calls = append(r.calls, "user")
	return r.userErr
}

type stubRepoLister struct {
	body json.RawMessage
	err  error
}

func (s *stubRepoLister) ListRepos(context.Context, string) (json.RawMessage, error) {
	return s.body, s.err
}

func strPtr(s string) *string { return &s }

func newTestService(repo *memProfileRepo, rec *cascadeRecorder) profile.Service {
	return NewProfileService(repo, rec, rec, &stubRepoLister{}, nil)
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	repo := newMemProfileRepo()
	svc := newTestService(repo, &cascadeRecorder{})
	ctx := context.Background()
	userID := uuid.New()

	req := profile.UpsertProfileRequest{
		Status: strPtr("Developer"),
		Skills: strPtr("Go, SQL"),
	}

	first, err := svc.Upsert(ctx, userID, req)
	require.NoError(t, err)
	assert.Equal(t, "Developer", first.Status)
	assert.Equal(t, []string{"Go", "SQL"}, first.Skills)

	// identical second call must update in place, not duplicate
	_, err = svc.Upsert(ctx, userID, req)
	require.NoError(t, err)

	all, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, 1, repo.updates)
}

func TestUpsertNormalizesSkills(t *testing.T) {
	repo := newMemProfileRepo()
	svc := newTestService(repo, &cascadeRecorder{})
	userID := uuid.New()

	prof, err := svc.Upsert(context.Background(), userID, profile.UpsertProfileRequest{
		Status: strPtr("dev"),
		Skills: strPtr("a, b ,c"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, prof.Skills)
}

func TestUpsertSparseMerge(t *testing.T) {
	repo := newMemProfileRepo()
	svc := newTestService(repo, &cascadeRecorder{})
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Upsert(ctx, userID, profile.UpsertProfileRequest{
		Status:  strPtr("dev"),
		Skills:  strPtr("go"),
		Company: strPtr("Acme"),
		Bio:     strPtr("hello"),
		Twitter: strPtr("https://twitter.com/acme"),
	})
	require.NoError(t, err)

	// company absent: keeps its value; bio sent empty: cleared
	prof, err := svc.Upsert(ctx, userID, profile.UpsertProfileRequest{
		Status: strPtr("dev"),
		Skills: strPtr("go"),
		Bio:    strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", prof.Company)
	assert.Equal(t, "", prof.Bio)
	assert.Equal(t, "https://twitter.com/acme", prof.Social.Twitter)
}

func TestAddExperiencePrependsNewestFirst(t *testing.T) {
	repo := newMemProfileRepo()
	svc := newTestService(repo, &cascadeRecorder{})
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Upsert(ctx, userID, profile.UpsertProfileRequest{
		Status: strPtr("dev"), Skills: strPtr("go"),
	})
	require.NoError(t, err)

	_, err = svc.AddExperience(ctx, userID, profile.ExperienceRequest{
		Title: "Junior", Company: "A", From: "2018-01-01",
	})
	require.NoError(t, err)

	prof, err := svc.AddExperience(ctx, userID, profile.ExperienceRequest{
		Title: "Senior", Company: "B", From: "2020-01-01",
	})
	require.NoError(t, err)

	require.Len(t, prof.Experience, 2)
	assert.Equal(t, "Senior", prof.Experience[0].Title)
	assert.Equal(t, "Junior", prof.Experience[1].Title)
	assert.NotEqual(t, uuid.Nil, prof.Experience[0].ID)
}

func TestAddExperienceWithoutProfileFails(t *testing.T) {
	svc := newTestService(newMemProfileRepo(), &cascadeRecorder{})

	_, err := svc.AddExperience(context.Background(), uuid.New(), profile.ExperienceRequest{
		Title: "Dev", Company: "A", From: "2020-01-01",
	})
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestRemoveExperienceByID(t *testing.T) {
	repo := newMemProfileRepo()
	svc := newTestService(repo, &cascadeRecorder{})
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Upsert(ctx, userID, profile.UpsertProfileRequest{
		Status: strPtr("dev"), Skills: strPtr("go"),
	})
	require.NoError(t, err)

	for _, title := range []string{"first", "second", "third"} {
		_, err = svc.AddExperience(ctx, userID, profile.ExperienceRequest{
			Title: title, Company: "A", From: "2020-01-01",
		})
		require.NoError(t, err)
	}

	prof, err := svc.GetOwnProfile(ctx, userID)
	require.NoError(t, err)
	require.Len(t, prof.Experience, 3)

	// remove the middle entry, relative order of the rest is kept
	target := prof.Experience[1]
	prof, err = svc.RemoveExperience(ctx, userID, target.ID.String())
	require.NoError(t, err)
	require.Len(t, prof.Experience, 2)
	assert.Equal(t, "third", prof.Experience[0].Title)
	assert.Equal(t, "first", prof.Experience[1].Title)

	// unknown id is a no-op
	prof, err = svc.RemoveExperience(ctx, userID, uuid.NewString())
	require.NoError(t, err)
	assert.Len(t, prof.Experience, 2)
}

func TestRemoveEducationByID(t *testing.T) {
	repo := newMemProfileRepo()
	svc := newTestService(repo, &cascadeRecorder{})
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Upsert(ctx, userID, profile.UpsertProfileRequest{
		Status: strPtr("dev"), Skills: strPtr("go"),
	})
	require.NoError(t, err)

	_, err = svc.AddEducation(ctx, userID, profile.EducationRequest{
		School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2015-09-01",
	})
	require.NoError(t, err)

	prof, err := svc.GetOwnProfile(ctx, userID)
	require.NoError(t, err)
	require.Len(t, prof.Education, 1)

	prof, err = svc.RemoveEducation(ctx, userID, prof.Education[0].ID.String())
	require.NoError(t, err)
	assert.Empty(t, prof.Education)
}

func TestDeleteAccountCascadeOrder(t *testing.T) {
	repo := newMemProfileRepo()
	rec := &cascadeRecorder{}
	svc := newTestService(repo, rec)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Upsert(ctx, userID, profile.UpsertProfileRequest{
		Status: strPtr("dev"), Skills: strPtr("go"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, userID))
	assert.Equal(t, []string{"posts", "user"}, rec.calls)

	_, err = svc.GetByUserID(ctx, userID)
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestDeleteAccountStopsOnFirstFailure(t *testing.T) {
	repo := newMemProfileRepo()
	rec := &cascadeRecorder{postsErr: errors.New("store down")}
	svc := newTestService(repo, rec)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Upsert(ctx, userID, profile.UpsertProfileRequest{
		Status: strPtr("dev"), Skills: strPtr("go"),
	})
	require.NoError(t, err)

	err = svc.DeleteAccount(ctx, userID)
	require.Error(t, err)
	// the post delete failed first: profile and identity stay put
	assert.Equal(t, []string{"posts"}, rec.calls)

	_, err = svc.GetByUserID(ctx, userID)
	assert.NoError(t, err)
}
