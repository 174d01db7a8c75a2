package crypto

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
)

// MasterKeySize is the length of every derived key in bytes.
const MasterKeySize = 32

const redacted = "[MASTER KEY]"

// MasterKey is the 32-byte symmetric key derived from the master password.
// It redacts itself in fmt, JSON and text output so it cannot leak through
// logs. The owner must call Zero when the key is no longer needed.
type MasterKey []byte

func (k MasterKey) String() string { return redacted }

// Format implements fmt.Formatter so every verb prints the redaction marker.
func (k MasterKey) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

func (k MasterKey) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

func (k MasterKey) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// IsEmpty reports whether the key holds no material.
func (k MasterKey) IsEmpty() bool {
	return len(k) == 0
}

// Equal compares two keys in constant time.
func (k MasterKey) Equal(other MasterKey) bool {
	return subtle.ConstantTimeCompare(k, other) == 1
}

// Clone returns an independent copy of the key.
func (k MasterKey) Clone() MasterKey {
	if k == nil {
		return nil
	}
	out := make(MasterKey, len(k))
	copy(out, k)
	return out
}

// Zero overwrites the key material in place.
func (k MasterKey) Zero() {
	for i := range k {
		k[i] = 0
	}
}
