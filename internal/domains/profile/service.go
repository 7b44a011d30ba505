package profile

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// Service defines the profile resource operations
type Service interface {
	// GetOwnProfile returns ErrProfileNotFound when the caller has none
	GetOwnProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)

	// ListProfiles returns all profiles, cache-backed
	ListProfiles(ctx context.Context) ([]*Profile, error)

	// GetByUserID returns ErrProfileNotFound for an unknown user
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)

	// Upsert creates the caller's profile on first call and sparse-merges
	// on later calls: only fields present in the request are touched.
	Upsert(ctx context.Context, userID uuid.UUID, req UpsertProfileRequest) (*Profile, error)

	// DeleteAccount removes the caller's posts, profile, and identity,
	// in that order, best-effort: earlier deletes stay committed if a
	// later one fails.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	// AddExperience prepends an entry to the caller's profile.
	// Returns ErrProfileNotFound when the caller has no profile yet.
	AddExperience(ctx context.Context, userID uuid.UUID, req ExperienceRequest) (*Profile, error)

	// RemoveExperience removes exactly the entry whose id matches;
	// an unknown id is a no-op returning the unchanged profile.
	RemoveExperience(ctx context.Context, userID uuid.UUID, expID string) (*Profile, error)

	AddEducation(ctx context.Context, userID uuid.UUID, req EducationRequest) (*Profile, error)
	RemoveEducation(ctx context.Context, userID uuid.UUID, eduID string) (*Profile, error)

	// GithubRepos proxies the upstream repo listing for a username
	GithubRepos(ctx context.Context, username string) (json.RawMessage, error)
}

// PostRemover is the post-store capability the account cascade needs
type PostRemover interface {
	DeleteByAuthor(ctx context.Context, authorID uuid.UUID) error
}

// IdentityRemover is the identity-store capability the account cascade needs
type IdentityRemover interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// RepoLister fetches a username's repositories from the external provider
type RepoLister interface {
	ListRepos(ctx context.Context, username string) (json.RawMessage, error)
}
