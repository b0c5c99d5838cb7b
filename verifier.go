package authkit

import (
	"context"
	"net/url"
)

// CredentialVerifier validates submitted form fields against a user
// directory. pkg/userdir provides the default implementation.
//
// On success Verify returns the directory's identifier for the user plus the
// resolved record. Refused credentials are reported with an error satisfying
// IsRejection (ErrBadCredentials, ErrMissingCredentials, or wrappings of
// them); any other error is an infrastructure failure and aborts the
// authentication pass.
type CredentialVerifier[User any] interface {
	Verify(ctx context.Context, fields url.Values) (userID string, user User, err error)
}
