package profile

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the profile document store contract.
// Every read joins the owning identity's name and avatar into
// Profile.User; writes persist the whole document.
type Repository interface {
	// FindByUserID returns ErrProfileNotFound when the user has no profile
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)

	// FindAll returns every profile; an empty result is not an error
	FindAll(ctx context.Context) ([]*Profile, error)

	// Create inserts a new profile document
	Create(ctx context.Context, p *Profile) error

	// Update persists the full document for the owning user.
	// Returns ErrProfileNotFound when no profile exists.
	Update(ctx context.Context, p *Profile) error

	// DeleteByUserID removes the user's profile.
	// Deleting an absent profile is not an error.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
