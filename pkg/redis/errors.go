package redis

import "errors"

var (
	ErrInvalidConnectionURL = errors.New("invalid redis connection url")
	ErrNotReady             = errors.New("redis did not become ready within the retry budget")
	ErrHealthcheckFailed    = errors.New("redis healthcheck failed")
)
