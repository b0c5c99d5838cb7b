package authkit

import "time"

const (
	DefaultCookieName = "sessionid"
	DefaultCookiePath = "/"
)

// Config carries the cookie contract for the session token. Zero values are
// replaced with the defaults above, so an empty Config is valid. Fields are
// env-tagged for loading with pkg/config.
type Config struct {
	CookieName string `env:"AUTH_COOKIE_NAME" envDefault:"sessionid"`
	CookiePath string `env:"AUTH_COOKIE_PATH" envDefault:"/"`

	// CookieTTL sets the Max-Age of freshly issued session cookies. Zero
	// issues a session-lifetime cookie that lives until the browser closes.
	CookieTTL time.Duration `env:"AUTH_COOKIE_TTL" envDefault:"0s"`
}

func (c Config) withDefaults() Config {
	if c.CookieName == "" {
		c.CookieName = DefaultCookieName
	}
	if c.CookiePath == "" {
		c.CookiePath = DefaultCookiePath
	}
	return c
}
