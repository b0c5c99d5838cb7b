package authkit

import "errors"

var (
	// ErrMissingCredentials means the login fields named no user or no password.
	ErrMissingCredentials = errors.New("authkit.missing_credentials")

	// ErrBadCredentials means the submitted credentials matched no directory entry.
	ErrBadCredentials = errors.New("authkit.bad_credentials")

	// ErrSessionUnbound means a live session record carries no user binding.
	// Sessions established through Authenticate always bind a user, so this
	// points at a record created or corrupted outside the login flow.
	ErrSessionUnbound = errors.New("authkit.session_unbound")
)

// IsRejection reports whether err is a credential rejection rather than an
// infrastructure failure. Rejections become Outcome values with
// StatusRejected; any other verifier error aborts the authentication pass.
func IsRejection(err error) bool {
	return errors.Is(err, ErrBadCredentials) || errors.Is(err, ErrMissingCredentials)
}
