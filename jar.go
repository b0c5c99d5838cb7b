package authkit

import (
	"net/http"
	"time"
)

// CookieJar moves the session token between requests and responses. It is
// pure transport: no validation of the token beyond recognizing it exists.
// pkg/cookie provides the default implementation, including signed cookies.
type CookieJar interface {
	// ReadToken returns the token carried by the named cookie. ok is false
	// when the cookie is absent or unreadable; reading never fails.
	ReadToken(r *http.Request, name string) (token string, ok bool)

	// SetToken writes token under the named cookie. A zero ttl issues a
	// session-lifetime cookie with no explicit expiry.
	SetToken(w http.ResponseWriter, name, token, path string, ttl time.Duration) error

	// ExpireToken overwrites the named cookie with an expiry in the past so
	// the client discards it.
	ExpireToken(w http.ResponseWriter, name, path string) error
}
