package repositories

import "errors"

// Sentinel errors shared by every repository implementation. Callers branch
// on the failure kind with errors.Is rather than matching message text.
var (
	// ErrNotFound is returned when a referenced user or post does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a uniqueness constraint is violated.
	ErrConflict = errors.New("record already exists")
)
