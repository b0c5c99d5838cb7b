package authkit

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/authkit/pkg/cookie"
)

// Option adjusts how New assembles an Authenticator. Options are shared
// across user types, so no type argument is needed at the call site.
type Option func(*settings)

type settings struct {
	cfg Config
	jar CookieJar
	log *slog.Logger
}

func applyOptions(opts []Option) (settings, error) {
	s := settings{
		cfg: Config{}.withDefaults(),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.cfg = s.cfg.withDefaults()

	if s.jar == nil {
		jar, err := cookie.NewJar()
		if err != nil {
			return settings{}, fmt.Errorf("authkit: default cookie jar: %w", err)
		}
		s.jar = jar
	}
	return s, nil
}

// WithConfig replaces the whole cookie contract at once, typically with a
// Config loaded from the environment. Zero fields fall back to defaults.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

// WithCookieName overrides the session cookie name, "sessionid" by default.
func WithCookieName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.cfg.CookieName = name
		}
	}
}

// WithCookiePath overrides the session cookie path, "/" by default.
func WithCookiePath(path string) Option {
	return func(s *settings) {
		if path != "" {
			s.cfg.CookiePath = path
		}
	}
}

// WithCookieTTL gives issued cookies an explicit Max-Age instead of the
// default session lifetime.
func WithCookieTTL(ttl time.Duration) Option {
	return func(s *settings) {
		s.cfg.CookieTTL = ttl
	}
}

// WithCookieJar swaps the cookie transport, e.g. for a jar with signing
// secrets or custom attributes.
func WithCookieJar(jar CookieJar) Option {
	return func(s *settings) {
		if jar != nil {
			s.jar = jar
		}
	}
}

// WithLogger attaches a logger for session lifecycle events.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}
