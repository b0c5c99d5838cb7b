// Package userdir provides directory-backed implementations of the two
// pluggable collaborators the authenticator needs on the user side: a
// credential verifier and a user resolver.
//
// A Directory is any read-only view of the application's users. The package
// ships a seedable in-memory directory (optionally loaded from a YAML file),
// a PostgreSQL directory and a MongoDB directory; applications with their
// own user storage implement the two-method Directory interface instead.
//
// The Verifier reproduces the classic login-form policy: read a username and
// a password field from the submitted values, fetch candidates by username
// and compare password columns. The comparison is a pluggable Matcher, so
// the same verifier covers plaintext legacy columns (PlainMatch, the
// default) and bcrypt hashes (BcryptMatch). Zero matches reject with
// authkit.ErrBadCredentials; several matches use the first and log the
// ambiguity rather than failing, matching how login directories have
// historically behaved.
package userdir
