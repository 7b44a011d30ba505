package post

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrNotAuthorized = errors.New("user not authorized")
)
