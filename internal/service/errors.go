package service

import "errors"

// Server-side errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrValidationNoUserID    = errors.New("no user ID was given")
)

// Client-side errors.
var (
	// ErrNotUnlocked is returned by every session operation that needs the
	// master key while the vault is locked, and by round trips that finish
	// after a concurrent Lock.
	ErrNotUnlocked = errors.New("vault is locked")

	// ErrStorage wraps any failure of the remote storage service. errors.Is
	// reaches both ErrStorage and the underlying adapter error.
	ErrStorage = errors.New("storage service failure")

	// ErrInvalidItem wraps validation failures of a plaintext item.
	ErrInvalidItem = errors.New("invalid vault item")

	ErrSignupOnServer  = errors.New("signup on server failed")
	ErrLoginOnServer   = errors.New("login on server failed")
	ErrTooManyAttempts = errors.New("too many attempts, try again later")
)
