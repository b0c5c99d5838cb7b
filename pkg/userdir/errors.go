package userdir

import "errors"

var (
	// ErrNotFound reports an identifier with no user behind it. When the
	// resolver returns it for a user id taken from a live session, the
	// condition is a data-consistency bug and is propagated, never repaired.
	ErrNotFound = errors.New("userdir.not_found")

	// ErrDuplicateID reports an attempt to seed two users with one id.
	ErrDuplicateID = errors.New("userdir.duplicate_id")
)
