package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrMissionNotFound    = errors.New("mission not found")

	// ErrDuplicateMissionID signals a broken ID allocator. It should be
	// unreachable; handlers log it and fail the request, never the process.
	ErrDuplicateMissionID = errors.New("duplicate mission id")
)
