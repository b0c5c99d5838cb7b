package httpserver

import (
	"log/slog"
	"time"
)

// Option adjusts the server settings. Invalid values are ignored in favor of
// the defaults.
type Option func(*settings)

// WithAddr sets the listen address, ":8080" by default.
func WithAddr(addr string) Option {
	return func(c *settings) {
		if addr != "" {
			c.addr = addr
		}
	}
}

// WithReadTimeout bounds reading an entire request.
func WithReadTimeout(d time.Duration) Option {
	return func(c *settings) {
		if d > 0 {
			c.readTimeout = d
		}
	}
}

// WithWriteTimeout bounds writing a response.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *settings) {
		if d > 0 {
			c.writeTimeout = d
		}
	}
}

// WithIdleTimeout bounds waiting for the next request on a kept-alive
// connection.
func WithIdleTimeout(d time.Duration) Option {
	return func(c *settings) {
		if d > 0 {
			c.idleTimeout = d
		}
	}
}

// WithShutdownTimeout bounds how long in-flight requests get to finish.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *settings) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// WithLogger attaches a logger for lifecycle events; silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(c *settings) {
		if log != nil {
			c.log = log
		}
	}
}
