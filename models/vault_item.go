package models

import (
	"strings"
	"time"
)

// VaultItem is the plaintext credential record. It only ever exists in client
// memory; the server receives it exclusively as an [EncryptedBlob].
//
// Field order and JSON names define the canonical encoding that is encrypted.
type VaultItem struct {
	// Title is the human-readable label of the credential (e.g. "Bank").
	Title string `json:"title"`

	// Username is the login used on the target service.
	Username string `json:"username"`

	// Password is the secret itself.
	Password string `json:"password"`

	// URL is the optional address of the target service.
	URL string `json:"url"`

	// Notes holds optional free-form text.
	Notes string `json:"notes"`
}

// Matches reports whether query occurs, case-insensitively, in the title,
// username, URL or notes of the item. An empty query matches everything.
// The password is never searched.
func (v VaultItem) Matches(query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}

	for _, field := range []string{v.Title, v.Username, v.URL, v.Notes} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}

// EncryptedBlob is the opaque, self-describing ciphertext of one [VaultItem]
// (base64 of nonce, ciphertext and authentication tag).
type EncryptedBlob string

// String returns the blob text as sent over the wire.
func (b EncryptedBlob) String() string {
	return string(b)
}

// StoredItem is a vault record as the server persists and returns it.
// The server never sees anything but EncryptedData.
type StoredItem struct {
	// ID is the server-assigned identifier of the record.
	ID string `json:"id"`

	// UserID is the owner of the record. Server-side only.
	UserID int64 `json:"-"`

	// EncryptedData is the ciphertext produced by the client.
	EncryptedData EncryptedBlob `json:"encryptedData"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the last modification timestamp; lists are ordered by it,
	// newest first.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table associated with
// the StoredItem model.
func (s StoredItem) TableName() string {
	return "vault_items"
}

// DecryptedItem pairs a server id with the plaintext item recovered from it.
type DecryptedItem struct {
	ID        string
	Item      VaultItem
	UpdatedAt time.Time
}
