package models

import "errors"

// Domain errors shared between repositories, services and handlers.
// Handlers map these to HTTP status codes with errors.Is.
var (
	// ErrUsernameTaken is returned when registering a username that already exists.
	// Also reported when a concurrent registration loses the race at the unique index.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrInvalidCredentials is returned for an unknown username or a wrong password.
	// Deliberately a single error so callers cannot tell which part failed.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrPendingApproval is returned when credentials are correct but the account
	// has not been approved by an administrator yet.
	ErrPendingApproval = errors.New("account pending approval")

	// ErrUserNotFound is returned when operating on a user id or username that does not exist.
	ErrUserNotFound = errors.New("user not found")
)
