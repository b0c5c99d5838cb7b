package authkit

import (
	"time"

	"github.com/dmitrymomot/authkit/pkg/session"
)

// Status classifies the result of one authentication pass.
type Status uint8

const (
	// StatusAnonymous means a stale session cookie was cleared and the
	// request proceeds without a user this cycle. Never an error.
	StatusAnonymous Status = iota

	// StatusAuthenticated means a user was restored from a live session or
	// freshly logged in.
	StatusAuthenticated

	// StatusRejected means submitted credentials were refused. The Outcome
	// carries a displayable Reason; no session or cookie state changed.
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusRejected:
		return "rejected"
	default:
		return "anonymous"
	}
}

// DirectiveKind names the cookie mutation applied to the response.
type DirectiveKind uint8

const (
	// DirectiveSet issued a fresh session cookie.
	DirectiveSet DirectiveKind = iota + 1

	// DirectiveExpire overwrote the cookie with a past expiry so the client
	// discards it.
	DirectiveExpire
)

func (k DirectiveKind) String() string {
	switch k {
	case DirectiveSet:
		return "set"
	case DirectiveExpire:
		return "expire"
	default:
		return "unknown"
	}
}

// CookieDirective records the single cookie write an authentication pass
// applied to the response. At most one is issued per request: Set when a
// session is established, Expire when a stale cookie is cleared.
type CookieDirective struct {
	Kind  DirectiveKind
	Name  string
	Value string
	Path  string

	// TTL mirrors the Max-Age written with a Set directive. Zero means a
	// session-lifetime cookie with no explicit expiry.
	TTL time.Duration
}

// Outcome is the answer to "who is making this request". It is produced
// fresh per request and never persisted.
type Outcome[User any] struct {
	Status Status

	// User and Session are populated only for StatusAuthenticated.
	User    User
	Session session.Record

	// Reason is a displayable message for StatusRejected, e.g.
	// "Bad username or password". Err carries the matching sentinel so
	// callers can branch with errors.Is.
	Reason string
	Err    error

	// Directive is the cookie write applied during the pass, nil when the
	// response cookies were left untouched.
	Directive *CookieDirective
}

// Authenticated reports whether a user is attached to the request.
func (o Outcome[User]) Authenticated() bool {
	return o.Status == StatusAuthenticated
}
