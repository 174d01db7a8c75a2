// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds all client-side vault cryptography: master-key
// derivation, per-item authenticated encryption and password generation.
// Nothing in this package touches the network, storage or logging.
package crypto

import "github.com/klaus-0-0/vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns the master password and the account identifier into the
// symmetric key that protects every vault item.
//
// Implementations must be deterministic: the same inputs always yield the
// same key, otherwise previously stored items become unreadable.
type KeyDeriver interface {
	// Derive returns the 32-byte master key. Returns ErrInvalidInput if
	// either argument is empty.
	Derive(masterPassword, accountID string) (MasterKey, error)
}

// ItemCipher converts vault items to opaque blobs and back.
type ItemCipher interface {
	// Encrypt serializes item canonically and encrypts it under key with a
	// fresh random nonce. Returns ErrEncryption if the key is unusable.
	Encrypt(item models.VaultItem, key MasterKey) (models.EncryptedBlob, error)

	// Decrypt reverses Encrypt. Any failure (malformed blob, wrong key,
	// tampering, non-canonical plaintext) is reported as ErrDecryption.
	Decrypt(blob models.EncryptedBlob, key MasterKey) (models.VaultItem, error)
}

// PasswordGenerator produces random secrets for new vault items.
type PasswordGenerator interface {
	// Generate returns a password satisfying policy or ErrInvalidPolicy.
	Generate(policy models.GeneratorPolicy) (string, error)

	// GeneratePassphrase returns words diceware words joined by separator.
	GeneratePassphrase(words int, separator string) (string, error)
}
