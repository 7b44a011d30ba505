package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"devnetwork-backend/internal/domains/profile"
	"devnetwork-backend/pkg/cache"
	"devnetwork-backend/pkg/logger"
)

const (
	profileListCacheKey = "profiles:all"
	profileListCacheTTL = 5 * time.Minute
)

// profileService implements profile.Service
type profileService struct {
	repo     profile.Repository
	posts    profile.PostRemover
	identity profile.IdentityRemover
	github   profile.RepoLister
	cache    cache.Cache
}

// NewProfileService wires the profile controller's collaborators.
// cache may be nil; caching is then skipped entirely.
func NewProfileService(
	repo profile.Repository,
	posts profile.PostRemover,
	identity profile.IdentityRemover,
	github profile.RepoLister,
	c cache.Cache,
) profile.Service {
	return &profileService{
		repo:     repo,
		posts:    posts,
		identity: identity,
		github:   github,
		cache:    c,
	}
}

// GetOwnProfile fetches the caller's profile
func (s *profileService) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// ListProfiles returns all profiles, serving from cache when warm.
// Cache failures degrade to the store and are only logged.
func (s *profileService) ListProfiles(ctx context.Context) ([]*profile.Profile, error) {
	if s.cache != nil {
		var cached []*profile.Profile
		found, err := s.cache.Get(ctx, profileListCacheKey, &cached)
		if err != nil {
			logger.Error("profile list cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	profiles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, profileListCacheKey, profiles, profileListCacheTTL); err != nil {
			logger.Error("profile list cache write failed", err)
		}
	}

	return profiles, nil
}

// GetByUserID fetches a profile by the owning user's id
func (s *profileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// Upsert creates the caller's profile on first call, otherwise applies a
// sparse merge: nil request fields keep their stored value, sent fields
// replace it (an explicit empty string clears).
func (s *profileService) Upsert(ctx context.Context, userID uuid.UUID, req profile.UpsertProfileRequest) (*profile.Profile, error) {
	existing, err := s.repo.FindByUserID(ctx, userID)
	if err != nil && err != profile.ErrProfileNotFound {
		return nil, err
	}

	if existing == nil {
		existing = &profile.Profile{
			ID:         uuid.New(),
			User:       profile.UserRef{ID: userID},
			Skills:     []string{},
			Experience: []profile.Experience{},
			Education:  []profile.Education{},
		}
		applyUpsert(existing, req)
		if err := s.repo.Create(ctx, existing); err != nil {
			return nil, err
		}
	} else {
		applyUpsert(existing, req)
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
	}

	s.invalidateList(ctx)
	return s.repo.FindByUserID(ctx, userID)
}

func applyUpsert(p *profile.Profile, req profile.UpsertProfileRequest) {
	if req.Company != nil {
		p.Company = *req.Company
	}
	if req.Website != nil {
		p.Website = *req.Website
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.GithubUsername != nil {
		p.GithubUsername = *req.GithubUsername
	}
	if req.Skills != nil {
		p.Skills = profile.SplitSkills(*req.Skills)
	}
	if req.Youtube != nil {
		p.Social.Youtube = *req.Youtube
	}
	if req.Twitter != nil {
		p.Social.Twitter = *req.Twitter
	}
	if req.Facebook != nil {
		p.Social.Facebook = *req.Facebook
	}
	if req.Linkedin != nil {
		p.Social.Linkedin = *req.Linkedin
	}
	if req.Instagram != nil {
		p.Social.Instagram = *req.Instagram
	}
}

// DeleteAccount removes the caller's posts, profile, and identity, in
// that order. There is no transaction: a failure partway leaves the
// earlier deletes committed.
func (s *profileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.posts.DeleteByAuthor(ctx, userID); err != nil {
		return fmt.Errorf("delete posts: %w", err)
	}
	if err := s.repo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if err := s.identity.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.invalidateList(ctx)
	return nil
}

// AddExperience prepends a new entry to the caller's profile
func (s *profileService) AddExperience(ctx context.Context, userID uuid.UUID, req profile.ExperienceRequest) (*profile.Profile, error) {
	prof, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := profile.Experience{
		ID:          uuid.New(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}
	prof.Experience = append([]profile.Experience{entry}, prof.Experience...)

	if err := s.repo.Update(ctx, prof); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return prof, nil
}

// RemoveExperience removes exactly the entry whose id matches expID.
// An unknown id leaves the profile untouched.
func (s *profileService) RemoveExperience(ctx context.Context, userID uuid.UUID, expID string) (*profile.Profile, error) {
	prof, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, e := range prof.Experience {
		if e.ID.String() == expID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return prof, nil
	}

	prof.Experience = append(prof.Experience[:idx], prof.Experience[idx+1:]...)

	if err := s.repo.Update(ctx, prof); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return prof, nil
}

// AddEducation prepends a new entry to the caller's profile
func (s *profileService) AddEducation(ctx context.Context, userID uuid.UUID, req profile.EducationRequest) (*profile.Profile, error) {
	prof, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := profile.Education{
		ID:           uuid.New(),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}
	prof.Education = append([]profile.Education{entry}, prof.Education...)

	if err := s.repo.Update(ctx, prof); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return prof, nil
}

// RemoveEducation removes exactly the entry whose id matches eduID
func (s *profileService) RemoveEducation(ctx context.Context, userID uuid.UUID, eduID string) (*profile.Profile, error) {
	prof, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, e := range prof.Education {
		if e.ID.String() == eduID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return prof, nil
	}

	prof.Education = append(prof.Education[:idx], prof.Education[idx+1:]...)

	if err := s.repo.Update(ctx, prof); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return prof, nil
}

// GithubRepos proxies the upstream repo listing. Responses are not
// cached; every call goes to the provider.
func (s *profileService) GithubRepos(ctx context.Context, username string) (json.RawMessage, error) {
	return s.github.ListRepos(ctx, username)
}

func (s *profileService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, profileListCacheKey); err != nil {
		logger.Error("profile list cache invalidation failed", err)
	}
}
