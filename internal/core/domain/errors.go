package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// A fetch by id that matches no row reports this; it is an absent
	// result, not an operational failure.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input,
	// such as an empty checklist name or a non-positive id.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable indicates the database file could not be
	// created or opened. Surfaced by store construction and never
	// retried internally.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNothingDeleted indicates a delete matched zero rows.
	// Callers that require "at least one row removed" semantics check
	// for this; it is distinct from an engine-level failure.
	ErrNothingDeleted = errors.New("nothing deleted")

	// ErrNotImplemented indicates functionality is not yet available,
	// typically a service running without a configured store.
	ErrNotImplemented = errors.New("not implemented")
)
