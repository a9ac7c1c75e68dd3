package repository

import "errors"

// Sentinel errors returned by repositories. Anything else coming out of a
// repository is an infrastructure failure (store unavailable) and must not
// be mistaken for a domain outcome.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
)
