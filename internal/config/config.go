// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the merged configuration shared by the server and the
// client binaries. Each binary reads the part it needs through
// GetServerConfig or GetClientConfig.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, key-derivation and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings (server only).
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses, timeouts and rate limits.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds how the client reaches the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds client background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file
	// (CONFIG env, -c / -config flag). Values from the file override env and
	// flags.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the HS256 secret for access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the token lifetime (e.g. "1h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// KDF selects the client master-key derivation ("sha256" or "argon2id").
	// Env: APP_KDF
	KDF string `env:"KDF"`

	// LogFile is where the client writes its logs; the terminal belongs to
	// the TUI. Defaults to "logs" next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// Driver is "postgres" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string, or the file path for sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds inbound transport settings.
type Server struct {
	// HTTPAddress is the REST listen address ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the health-check listen address; empty disables gRPC.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthRateLimit is the sustained number of signup/login requests per
	// second allowed from one client IP.
	// Env: SERVER_AUTH_RATE_LIMIT
	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT"`

	// AuthRateBurst is the burst size for AuthRateLimit.
	// Env: SERVER_AUTH_RATE_BURST
	AuthRateBurst int `env:"AUTH_RATE_BURST"`
}

// Adapter holds outbound client settings.
type Adapter struct {
	// HTTPAddress is the server base URL ("http://host:port" or "host:port").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds client background job settings.
type Workers struct {
	// AutoLockTimeout locks the vault after this much inactivity;
	// zero disables auto-lock.
	// Env: WORKERS_AUTO_LOCK_TIMEOUT
	AutoLockTimeout time.Duration `env:"AUTO_LOCK_TIMEOUT"`

	// ClipboardTimeout clears a copied secret after this long;
	// zero keeps it.
	// Env: WORKERS_CLIPBOARD_TIMEOUT
	ClipboardTimeout time.Duration `env:"CLIPBOARD_TIMEOUT"`
}

// defaultConfig holds the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "vault",
			TokenDuration: time.Hour,
			KDF:           "sha256",
		},
		Storage: Storage{DB: DB{Driver: "postgres"}},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			AuthRateLimit:  1,
			AuthRateBurst:  5,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			AutoLockTimeout:  5 * time.Minute,
			ClipboardTimeout: 30 * time.Second,
		},
	}
}

// GetStructuredConfig merges, in increasing priority: defaults, environment
// variables, command-line flags, the JSON file. It does not validate.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// GetServerConfig returns the merged config validated for the server binary.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
