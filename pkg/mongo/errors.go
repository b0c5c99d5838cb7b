package mongo

import "errors"

var (
	ErrNotReady          = errors.New("mongodb did not become ready within the retry budget")
	ErrHealthcheckFailed = errors.New("mongodb healthcheck failed")
)
