package cookie

import "net/http"

// Options hold the cookie attributes shared by every write the jar performs.
// Name, value, path and lifetime are per-call arguments, not options.
type Options struct {
	Domain   string
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite

	secrets []string
}

type Option func(*Options)

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HttpOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// WithSigningSecrets enables HMAC signing of token values. The first secret
// signs new cookies; the rest only verify. Empty strings are ignored.
func WithSigningSecrets(secrets ...string) Option {
	return func(o *Options) {
		for _, s := range secrets {
			if s != "" {
				o.secrets = append(o.secrets, s)
			}
		}
	}
}

// applyOptions copies base and applies opts to the copy; base stays untouched.
func applyOptions(base Options, opts []Option) Options {
	result := base
	result.secrets = append([]string(nil), base.secrets...)

	for _, opt := range opts {
		opt(&result)
	}

	return result
}
