package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/klaus-0-0/vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T, password, account string) MasterKey {
	t.Helper()
	key, err := NewSHA256KeyDeriver().Derive(password, account)
	require.NoError(t, err)
	return key
}

// sealRaw encrypts an arbitrary plaintext in the blob layout used by the cipher.
func sealRaw(t *testing.T, key MasterKey, plaintext []byte) models.EncryptedBlob {
	t.Helper()
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	aead, err := cipher.NewGCM(block)
	require.NoError(t, err)

	nonce := make([]byte, gcmNonceSize)
	_, err = rand.Read(nonce)
	require.NoError(t, err)

	return models.EncryptedBlob(base64.StdEncoding.EncodeToString(aead.Seal(nonce, nonce, plaintext, nil)))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestItemCipher_RoundTrip(t *testing.T) {
	c := NewItemCipher()
	key := testKey(t, "Tr0ub4dor&3", "alice@example.com")

	items := []models.VaultItem{
		{Title: "Bank", Username: "alice", Password: "p@ss"},
		{Title: "Mail", Username: "alice@example.com", Password: "x", URL: "https://mail.example.com", Notes: "2FA on phone"},
		{Title: "Юникод ✓", Username: "ñandú", Password: "密码", Notes: "line1\nline2\t\"quoted\""},
		{Title: "", Username: "", Password: ""},
	}

	for _, item := range items {
		blob, err := c.Encrypt(item, key)
		require.NoError(t, err)
		assert.NotContains(t, blob.String(), item.Password+"\"")

		got, err := c.Decrypt(blob, key)
		require.NoError(t, err)
		assert.Equal(t, item, got)
	}
}

func TestItemCipher_KeySensitivity(t *testing.T) {
	c := NewItemCipher()
	item := models.VaultItem{Title: "Bank", Username: "alice", Password: "p@ss"}

	blob, err := c.Encrypt(item, testKey(t, "right", "alice@example.com"))
	require.NoError(t, err)

	_, err = c.Decrypt(blob, testKey(t, "wrong", "alice@example.com"))
	assert.ErrorIs(t, err, ErrDecryption)

	_, err = c.Decrypt(blob, testKey(t, "right", "mallory@example.com"))
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestItemCipher_NonDeterministic(t *testing.T) {
	c := NewItemCipher()
	key := testKey(t, "pw", "alice@example.com")
	item := models.VaultItem{Title: "Bank", Username: "alice", Password: "p@ss"}

	first, err := c.Encrypt(item, key)
	require.NoError(t, err)
	second, err := c.Encrypt(item, key)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestItemCipher_EncryptErrors(t *testing.T) {
	item := models.VaultItem{Title: "Bank", Username: "alice", Password: "p@ss"}

	t.Run("empty key", func(t *testing.T) {
		_, err := NewItemCipher().Encrypt(item, nil)
		assert.ErrorIs(t, err, ErrEncryption)
	})

	t.Run("short key", func(t *testing.T) {
		_, err := NewItemCipher().Encrypt(item, MasterKey(bytes.Repeat([]byte{1}, 16)))
		assert.ErrorIs(t, err, ErrEncryption)
	})

	t.Run("random source failure", func(t *testing.T) {
		c := &aesGCMCipher{random: failingReader{}}
		_, err := c.Encrypt(item, testKey(t, "pw", "acc"))
		assert.ErrorIs(t, err, ErrEncryption)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		for _, bad := range []models.VaultItem{
			{Title: "\xff", Username: "alice", Password: "p@ss"},
			{Title: "Bank", Username: "alice", Password: "p@ss", Notes: "ok\xc3("},
		} {
			_, err := NewItemCipher().Encrypt(bad, testKey(t, "pw", "acc"))
			assert.ErrorIs(t, err, ErrEncryption)
		}
	})
}

func TestItemCipher_DecryptErrors(t *testing.T) {
	c := NewItemCipher()
	key := testKey(t, "pw", "alice@example.com")

	valid, err := c.Encrypt(models.VaultItem{Title: "Bank", Username: "alice", Password: "p@ss"}, key)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(valid.String())
	require.NoError(t, err)
	tampered := bytes.Clone(raw)
	tampered[len(tampered)-1] ^= 0x01

	tests := []struct {
		name string
		blob models.EncryptedBlob
		key  MasterKey
	}{
		{"empty blob", "", key},
		{"not base64", "%%%not-base64%%%", key},
		{"too short", models.EncryptedBlob(base64.StdEncoding.EncodeToString(make([]byte, minBlobSize-1))), key},
		{"nine characters", "abcdefghi", key},
		{"tampered tag", models.EncryptedBlob(base64.StdEncoding.EncodeToString(tampered)), key},
		{"empty key", valid, nil},
		{"invalid utf8 plaintext", sealRaw(t, key, []byte{0xff, 0xfe, 0xfd}), key},
		{"plaintext not json", sealRaw(t, key, []byte("hello")), key},
		{"json array", sealRaw(t, key, []byte(`["Bank"]`)), key},
		{"json null", sealRaw(t, key, []byte(`null`)), key},
		{"missing password", sealRaw(t, key, []byte(`{"title":"Bank","username":"alice"}`)), key},
		{"unknown field", sealRaw(t, key, []byte(`{"title":"a","username":"b","password":"c","otp":"d"}`)), key},
		{"wrong field type", sealRaw(t, key, []byte(`{"title":1,"username":"b","password":"c"}`)), key},
		{"trailing data", sealRaw(t, key, []byte(`{"title":"a","username":"b","password":"c"} {}`)), key},
		{"empty plaintext", sealRaw(t, key, []byte{}), key},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := c.Decrypt(tt.blob, tt.key)
				assert.ErrorIs(t, err, ErrDecryption)
			})
		})
	}
}

func TestItemCipher_DecryptOptionalFieldsMissing(t *testing.T) {
	key := testKey(t, "pw", "alice@example.com")
	blob := sealRaw(t, key, []byte(`{"title":"Bank","username":"alice","password":"p@ss"}`))

	item, err := NewItemCipher().Decrypt(blob, key)
	require.NoError(t, err)
	assert.Equal(t, models.VaultItem{Title: "Bank", Username: "alice", Password: "p@ss"}, item)
}

func TestItemCipher_EndToEnd(t *testing.T) {
	key, err := NewSHA256KeyDeriver().Derive("Tr0ub4dor&3", "alice@example.com")
	require.NoError(t, err)

	item := models.VaultItem{Title: "Bank", Username: "alice", Password: "p@ss", URL: "", Notes: ""}
	blob, err := NewItemCipher().Encrypt(item, key)
	require.NoError(t, err)

	for _, field := range []string{"Bank", "alice", "p@ss"} {
		assert.False(t, strings.Contains(blob.String(), field))
	}

	again, err := NewSHA256KeyDeriver().Derive("Tr0ub4dor&3", "alice@example.com")
	require.NoError(t, err)

	got, err := NewItemCipher().Decrypt(blob, again)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}
