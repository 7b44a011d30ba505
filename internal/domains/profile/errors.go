package profile

import "errors"

var (
	// ErrProfileNotFound means no profile document exists for the user
	ErrProfileNotFound = errors.New("profile not found")
)
