package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrInvalidURL         = errors.New("invalid url")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password is too short")
	ErrEmptyEncryptedData = errors.New("encrypted data is required")
	ErrEncryptedDataSize  = errors.New("encrypted data is too large")
)
