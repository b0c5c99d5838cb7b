package userdir

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/dmitrymomot/authkit"
	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Default submitted-field names, overridable per verifier.
const (
	DefaultUserField     = "user"
	DefaultPasswordField = "password"
)

// Config carries the verifier settings an application usually wants in its
// environment rather than in code.
type Config struct {
	UserField     string `env:"AUTH_USER_FIELD" envDefault:"user"`         // UserField is the submitted-form field holding the username.
	PasswordField string `env:"AUTH_PASSWORD_FIELD" envDefault:"password"` // PasswordField is the submitted-form field holding the secret.
}

// Verifier validates submitted credentials against a Directory. It reads two
// named fields from the submitted values, fetches candidates by username and
// applies the configured Matcher to each one's stored password field.
//
// When several directory records match, the first in directory order wins;
// the ambiguity is logged at Warn. Directories that want to exclude the case
// should enforce username uniqueness themselves.
type Verifier struct {
	dir       Directory
	match     Matcher
	userField string
	passField string
	log       *slog.Logger
}

type VerifierOption func(*Verifier)

// WithMatcher replaces the password comparison, PlainMatch by default.
func WithMatcher(m Matcher) VerifierOption {
	return func(v *Verifier) {
		if m != nil {
			v.match = m
		}
	}
}

// WithFieldNames renames the submitted fields the verifier reads.
func WithFieldNames(userField, passwordField string) VerifierOption {
	return func(v *Verifier) {
		if userField != "" {
			v.userField = userField
		}
		if passwordField != "" {
			v.passField = passwordField
		}
	}
}

// WithConfig applies environment-driven settings.
func WithConfig(cfg Config) VerifierOption {
	return func(v *Verifier) {
		WithFieldNames(cfg.UserField, cfg.PasswordField)(v)
	}
}

// WithLogger routes the verifier's diagnostics; discarded by default.
func WithLogger(log *slog.Logger) VerifierOption {
	return func(v *Verifier) {
		if log != nil {
			v.log = log
		}
	}
}

// NewVerifier creates a directory-backed credential verifier.
func NewVerifier(dir Directory, opts ...VerifierOption) *Verifier {
	v := &Verifier{
		dir:       dir,
		match:     PlainMatch,
		userField: DefaultUserField,
		passField: DefaultPasswordField,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify implements the credential check. Rejections wrap
// authkit.ErrMissingCredentials or authkit.ErrBadCredentials; any other
// error is a directory failure and propagates as such.
func (v *Verifier) Verify(ctx context.Context, fields url.Values) (string, User, error) {
	username := fields.Get(v.userField)
	password := fields.Get(v.passField)
	if username == "" || password == "" {
		return "", User{}, authkit.ErrMissingCredentials
	}

	candidates, err := v.dir.FindByUsername(ctx, username)
	if err != nil {
		return "", User{}, fmt.Errorf("userdir: find %q: %w", username, err)
	}

	var matches []User
	for _, u := range candidates {
		if v.match(u.Password, password) {
			matches = append(matches, u)
		}
	}
	if len(matches) == 0 {
		return "", User{}, authkit.ErrBadCredentials
	}
	if len(matches) > 1 {
		v.log.WarnContext(ctx, "credentials matched more than one user, using the first",
			logger.Component("userdir"),
			slog.String("username", username),
			slog.Int("matches", len(matches)))
	}

	u := matches[0]
	return u.ID, u, nil
}
