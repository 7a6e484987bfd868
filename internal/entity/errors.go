package entity

import "errors"

// Error taxonomy shared by every operation. Handlers translate these with
// errors.Is; anything else is treated as an internal error.
var (
	// ErrInvalidReference means an id was required and the supplied value is
	// not a well-formed identifier.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrNotFound means the id was well-formed but no record matches.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the acting user is not allowed to mutate the entity.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict means a uniqueness invariant was violated and could not be
	// reconciled.
	ErrConflict = errors.New("conflict")

	// ErrCascadeFailed means dependent records could not be cleaned up, so
	// the owning record was left in place.
	ErrCascadeFailed = errors.New("cascade failed")
)
