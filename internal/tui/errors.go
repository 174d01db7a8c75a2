// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/klaus-0-0/vault/internal/crypto"
	"github.com/klaus-0-0/vault/internal/service"
	"github.com/klaus-0-0/vault/internal/store"
)

// ErrUserQuit is returned by Run when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns service errors into a line for the status area.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "Invalid e-mail or password"
	case errors.Is(err, store.ErrNoUserWasFound):
		return "No account with this e-mail"
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return "An account with this e-mail already exists"
	case errors.Is(err, service.ErrTooManyAttempts):
		return "Too many attempts, try again later"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Session expired, log in again"
	case errors.Is(err, service.ErrNotUnlocked):
		return "Vault is locked"
	case errors.Is(err, service.ErrInvalidItem):
		msg := strings.TrimPrefix(err.Error(), service.ErrInvalidItem.Error()+": ")
		return strings.ReplaceAll(msg, "\n", "; ")
	case errors.Is(err, crypto.ErrInvalidInput):
		return "Master password is required"
	case isNetworkError(err):
		return "Network is down or the server is unavailable"
	case errors.Is(err, service.ErrStorage):
		return "Storage service failure, try again"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return err.Error()
	}

	return err.Error()
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
