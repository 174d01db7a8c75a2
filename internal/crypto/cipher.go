// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/klaus-0-0/vault/models"
)

const (
	gcmNonceSize = 12
	gcmTagSize   = 16

	// minBlobSize is the decoded size of a blob with an empty plaintext.
	minBlobSize = gcmNonceSize + gcmTagSize
)

// aesGCMCipher implements ItemCipher with AES-256-GCM.
//
// Blob layout: base64(nonce[12] || ciphertext || tag[16]).
type aesGCMCipher struct {
	random io.Reader
}

// NewItemCipher returns the AES-256-GCM item cipher backed by crypto/rand.
func NewItemCipher() ItemCipher {
	return &aesGCMCipher{random: rand.Reader}
}

func (c *aesGCMCipher) Encrypt(item models.VaultItem, key MasterKey) (models.EncryptedBlob, error) {
	aead, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	for _, field := range []string{item.Title, item.Username, item.Password, item.URL, item.Notes} {
		if !utf8.ValidString(field) {
			return "", fmt.Errorf("%w: item field is not valid UTF-8", ErrEncryption)
		}
	}

	plaintext, err := json.Marshal(item)
	if err != nil {
		return "", fmt.Errorf("%w: serialize item: %w", ErrEncryption, err)
	}

	nonce := make([]byte, gcmNonceSize, gcmNonceSize+len(plaintext)+gcmTagSize)
	if _, err = io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrEncryption, err)
	}

	sealed := aead.Seal(nonce, nonce, plaintext, nil)
	return models.EncryptedBlob(base64.StdEncoding.EncodeToString(sealed)), nil
}

func (c *aesGCMCipher) Decrypt(blob models.EncryptedBlob, key MasterKey) (models.VaultItem, error) {
	if blob == "" {
		return models.VaultItem{}, fmt.Errorf("%w: empty blob", ErrDecryption)
	}

	raw, err := base64.StdEncoding.DecodeString(string(blob))
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: malformed blob", ErrDecryption)
	}
	if len(raw) < minBlobSize {
		return models.VaultItem{}, fmt.Errorf("%w: blob too short", ErrDecryption)
	}

	aead, err := newGCM(key)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	nonce, sealed := raw[:gcmNonceSize], raw[gcmNonceSize:]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: authentication failed", ErrDecryption)
	}

	if !utf8.Valid(plaintext) {
		return models.VaultItem{}, fmt.Errorf("%w: plaintext is not UTF-8", ErrDecryption)
	}

	item, err := parseCanonicalItem(plaintext)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return item, nil
}

func newGCM(key MasterKey) (cipher.AEAD, error) {
	if key.IsEmpty() {
		return nil, errors.New("empty key")
	}
	if len(key) != MasterKeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", MasterKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

// canonicalItem mirrors models.VaultItem with pointer fields so that missing
// required keys can be told apart from empty values.
type canonicalItem struct {
	Title    *string `json:"title"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	URL      *string `json:"url"`
	Notes    *string `json:"notes"`
}

func parseCanonicalItem(plaintext []byte) (models.VaultItem, error) {
	dec := json.NewDecoder(bytes.NewReader(plaintext))
	dec.DisallowUnknownFields()

	var parsed canonicalItem
	if err := dec.Decode(&parsed); err != nil {
		return models.VaultItem{}, errors.New("plaintext is not a vault item")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.VaultItem{}, errors.New("trailing data after vault item")
	}
	if parsed.Title == nil || parsed.Username == nil || parsed.Password == nil {
		return models.VaultItem{}, errors.New("vault item is missing required fields")
	}

	item := models.VaultItem{
		Title:    *parsed.Title,
		Username: *parsed.Username,
		Password: *parsed.Password,
	}
	if parsed.URL != nil {
		item.URL = *parsed.URL
	}
	if parsed.Notes != nil {
		item.Notes = *parsed.Notes
	}

	return item, nil
}
