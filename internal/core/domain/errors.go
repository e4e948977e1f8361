package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. The pure pipeline
// functions never return errors; these exist for ports and services.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrQueryTooShort indicates the query is below the minimum
	// length a provider search will be attempted for.
	ErrQueryTooShort = errors.New("query too short")

	// ErrProviderUnavailable indicates no search provider is wired.
	ErrProviderUnavailable = errors.New("search provider unavailable")

	// ErrControllerClosed indicates the query controller has been
	// closed and no longer accepts input.
	ErrControllerClosed = errors.New("query controller closed")
)
