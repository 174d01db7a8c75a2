// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Supported key derivation algorithms, selectable through APP_KDF.
const (
	KDFSHA256   = "sha256"
	KDFArgon2id = "argon2id"
)

// Argon2id parameters (RFC 9106 second recommended option).
const (
	argon2Time    = 3
	argon2Memory  = 64 * 1024
	argon2Threads = 4
)

type sha256KeyDeriver struct{}

// NewSHA256KeyDeriver returns the default deriver:
// key = SHA-256(masterPassword || accountID).
//
// The formula has no stretching; it is kept because every existing vault was
// encrypted under it. Use NewArgon2KeyDeriver for new vaults.
func NewSHA256KeyDeriver() KeyDeriver {
	return sha256KeyDeriver{}
}

func (sha256KeyDeriver) Derive(masterPassword, accountID string) (MasterKey, error) {
	if masterPassword == "" || accountID == "" {
		return nil, fmt.Errorf("%w: master password and account id are required", ErrInvalidInput)
	}

	sum := sha256.Sum256([]byte(masterPassword + accountID))
	return MasterKey(sum[:]), nil
}

type argon2KeyDeriver struct{}

// NewArgon2KeyDeriver returns a memory-hard deriver. The salt is
// SHA-256(accountID), so derivation stays deterministic per account.
func NewArgon2KeyDeriver() KeyDeriver {
	return argon2KeyDeriver{}
}

func (argon2KeyDeriver) Derive(masterPassword, accountID string) (MasterKey, error) {
	if masterPassword == "" || accountID == "" {
		return nil, fmt.Errorf("%w: master password and account id are required", ErrInvalidInput)
	}

	salt := sha256.Sum256([]byte(accountID))
	key := argon2.IDKey([]byte(masterPassword), salt[:], argon2Time, argon2Memory, argon2Threads, MasterKeySize)
	return MasterKey(key), nil
}

// NewKeyDeriver resolves an algorithm name to a KeyDeriver.
// An empty name selects KDFSHA256.
func NewKeyDeriver(algorithm string) (KeyDeriver, error) {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case "", KDFSHA256:
		return NewSHA256KeyDeriver(), nil
	case KDFArgon2id:
		return NewArgon2KeyDeriver(), nil
	default:
		return nil, fmt.Errorf("%w: unknown key derivation algorithm %q", ErrInvalidInput, algorithm)
	}
}
