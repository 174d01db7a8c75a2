// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks the settings the server needs at startup.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token sign key, issuer and positive duration are required", ErrInvalidAppConfigs))
	}

	switch cfg.Storage.DB.Driver {
	case "postgres", "sqlite3":
	default:
		errs = append(errs, fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.AuthRateLimit < 0 || cfg.Server.AuthRateBurst < 0 {
		errs = append(errs, fmt.Errorf("%w: timeouts and rate limits must not be negative", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}

// validate checks the settings the client needs at startup.
func (cfg *ClientConfig) validate() error {
	var errs []error

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: server url and positive request timeout are required", ErrInvalidAdapterConfigs))
	}

	switch cfg.App.KDF {
	case "sha256", "argon2id":
	default:
		errs = append(errs, fmt.Errorf("%w: unsupported kdf %q", ErrInvalidAppConfigs, cfg.App.KDF))
	}

	if cfg.Workers.AutoLockTimeout < 0 || cfg.Workers.ClipboardTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: timeouts must not be negative", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}
