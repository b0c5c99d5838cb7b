package session

import "errors"

var (
	// ErrNotFound reports an identifier with no live record behind it. This
	// is the one store failure callers are expected to branch on.
	ErrNotFound = errors.New("session.not_found")
)
