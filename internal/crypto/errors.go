package crypto

import "errors"

var (
	// ErrInvalidInput is returned when a derivation input is empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPolicy is returned for generator policies that cannot be
	// satisfied (no character class enabled, length below one).
	ErrInvalidPolicy = errors.New("invalid generator policy")

	// ErrEncryption is returned when an item cannot be encrypted.
	ErrEncryption = errors.New("encryption failed")

	// ErrDecryption is returned for every decrypt failure. Callers cannot
	// and should not distinguish a wrong key from corrupted data.
	ErrDecryption = errors.New("decryption failed: wrong password or corrupted data")
)
