package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeConfigFile(t, `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"version": "0.9.0",
			"kdf": "argon2id"
		},
		"storage": {"db": {"driver": "sqlite3", "dsn": "vault.db"}},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"auth_rate_limit": 4,
			"auth_rate_burst": 8
		},
		"adapter": {"http_address": "http://localhost:8080", "request_timeout": 5000000000},
		"workers": {"auto_lock_timeout": "3m", "clipboard_timeout": "10s"}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "argon2id", cfg.App.KDF)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 4.0, cfg.Server.AuthRateLimit)
	assert.Equal(t, 8, cfg.Server.AuthRateBurst)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3*time.Minute, cfg.Workers.AutoLockTimeout)
	assert.Equal(t, 10*time.Second, cfg.Workers.ClipboardTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorContains(t, err, "error reading a json file")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseJSON(writeConfigFile(t, `{"app":`))
		assert.ErrorContains(t, err, "error decoding json configs")
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := parseJSON(writeConfigFile(t, `{"app":{"token_duration":"soon"}}`))
		assert.Error(t, err)
	})

	t.Run("duration of wrong type", func(t *testing.T) {
		_, err := parseJSON(writeConfigFile(t, `{"app":{"token_duration":true}}`))
		assert.Error(t, err)
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
