package cookie

import "errors"

var (
	ErrSecretTooShort   = errors.New("cookie.secret_too_short")
	ErrInvalidSignature = errors.New("cookie.invalid_signature")
	ErrInvalidFormat    = errors.New("cookie.invalid_format")
	ErrValueTooLong     = errors.New("cookie.value_too_long")
)
