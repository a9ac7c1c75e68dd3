package application

import "errors"

// Authentication and domain failures. Login handlers deliberately collapse
// ErrBadUsername and ErrBadPassword into one generic message so callers
// cannot enumerate usernames; the distinct reasons are only logged.
var (
	ErrBadUsername            = errors.New("unknown username")
	ErrBadPassword            = errors.New("incorrect password")
	ErrIdentityNotFound       = errors.New("token identity no longer exists")
	ErrInsufficientPermission = errors.New("insufficient permission")

	ErrUsernameTaken    = errors.New("username already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrDirectorNotFound = errors.New("director not found")
)
