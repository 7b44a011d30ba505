package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines identity business logic
type Service interface {
	// Register creates an identity and returns a signed token.
	// Returns ErrEmailAlreadyExists for a duplicate email.
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)

	// Login checks credentials and returns a signed token.
	// Returns ErrInvalidCredentials on unknown email or wrong password.
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)

	// GetByID returns the identity without its password hash
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
