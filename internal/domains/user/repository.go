package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the identity store contract.
// The profile domain depends on Delete for the account-removal cascade.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, u *User) error

	// FindByID returns ErrUserNotFound when no user matches
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail returns ErrUserNotFound when no user matches
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether an identity uses the email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Delete removes the identity record.
	// Returns ErrUserNotFound when no user matches.
	Delete(ctx context.Context, id uuid.UUID) error
}
