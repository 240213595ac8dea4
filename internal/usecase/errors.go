package usecase

import "errors"

// Sentinels shared by the usecases; handlers translate them to HTTP statuses.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")

	ErrJobNotFound         = errors.New("job not found")
	ErrAlreadyApplied      = errors.New("already applied for this job")
	ErrApplicationNotFound = errors.New("application not found")

	// ErrTransitionConflict reports a status transition that lost the race:
	// the application already left the pending state.
	ErrTransitionConflict = errors.New("application is no longer pending")
)
