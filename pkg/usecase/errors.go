package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors returned by use cases. The HTTP layer maps these to
// status codes.
var (
	// ErrUnauthenticated means the bearer token is missing or invalid
	ErrUnauthenticated = goerr.New("unauthenticated")

	// ErrAccessDenied means the caller does not own the target resource
	ErrAccessDenied = goerr.New("access denied")

	// ErrNotFound means the target resource does not exist
	ErrNotFound = goerr.New("resource not found")

	// ErrInvalidInput means the request payload fails validation
	ErrInvalidInput = goerr.New("invalid input")
)
