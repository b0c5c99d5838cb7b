package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("config.nil_pointer")

	// ErrParsingConfig wraps failures from parsing environment variables
	// into the destination struct, including missing required values.
	ErrParsingConfig = errors.New("config.parsing_failed")
)
