package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	minSecretLength = 32
	maxCookieSize   = 4096
)

// Jar reads and writes the session token cookie. The zero configuration
// writes plain tokens; with signing secrets every outbound value carries an
// HMAC-SHA256 signature and inbound values that fail verification are
// reported as absent.
type Jar struct {
	secrets  []string
	defaults Options
}

// NewJar creates a token jar. Signing is enabled by WithSigningSecrets;
// when several secrets are given the first one signs and all of them verify,
// so old cookies stay valid while a secret is being rotated out.
func NewJar(opts ...Option) (*Jar, error) {
	defaults := Options{
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	defaults = applyOptions(defaults, opts)

	for i, s := range defaults.secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	return &Jar{
		secrets:  defaults.secrets,
		defaults: defaults,
	}, nil
}

// ReadToken returns the token carried by the named cookie. A missing cookie,
// an empty value, or a bad signature all yield ok == false; the caller never
// sees a transport-level failure.
func (j *Jar) ReadToken(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil || c.Value == "" {
		return "", false
	}

	if len(j.secrets) == 0 {
		return c.Value, true
	}

	token, err := j.verify(c.Value)
	if err != nil {
		return "", false
	}
	return token, true
}

// SetToken writes the token cookie. A ttl of zero produces a session-lifetime
// cookie (no Max-Age, no Expires); a positive ttl is translated to Max-Age.
func (j *Jar) SetToken(w http.ResponseWriter, name, value, path string, ttl time.Duration) error {
	if len(j.secrets) > 0 {
		value = j.sign(value)
	}

	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   j.defaults.Domain,
		Secure:   j.defaults.Secure,
		HttpOnly: j.defaults.HttpOnly,
		SameSite: j.defaults.SameSite,
	}
	if ttl > 0 {
		c.MaxAge = int(ttl / time.Second)
	}

	if len(c.String()) > maxCookieSize {
		return fmt.Errorf("%w: %q exceeds %d bytes", ErrValueTooLong, name, maxCookieSize)
	}

	http.SetCookie(w, c)
	return nil
}

// ExpireToken instructs the client to discard the named cookie: empty value,
// Max-Age 0 and an Expires stamp three months in the past.
func (j *Jar) ExpireToken(w http.ResponseWriter, name, path string) error {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		Domain:   j.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Now().AddDate(0, -3, 0),
		Secure:   j.defaults.Secure,
		HttpOnly: j.defaults.HttpOnly,
		SameSite: j.defaults.SameSite,
	})
	return nil
}

func (j *Jar) sign(value string) string {
	mac := hmac.New(sha256.New, []byte(j.secrets[0]))
	mac.Write([]byte(value))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	return base64.RawURLEncoding.EncodeToString([]byte(value)) + "|" + sig
}

func (j *Jar) verify(signed string) (string, error) {
	encoded, sig, found := strings.Cut(signed, "|")
	if !found {
		return "", ErrInvalidFormat
	}

	value, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidFormat
	}

	// Every secret is tried so cookies signed before a rotation still verify.
	for _, secret := range j.secrets {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(value)
		want := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

		if subtle.ConstantTimeCompare([]byte(sig), []byte(want)) == 1 {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}
