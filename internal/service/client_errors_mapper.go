// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/klaus-0-0/vault/internal/adapter"
	"github.com/klaus-0-0/vault/internal/app"
	"github.com/klaus-0-0/vault/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Unknown errors are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return ErrWrongPassword
		case app.MsgTokenIsExpiredOrInvalid, app.MsgAccessTokenRequired:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return store.ErrNoUserWasFound
		case app.MsgItemNotFound:
			return store.ErrItemNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgUserAlreadyExists {
			return store.ErrEmailAlreadyExists
		}

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrTooManyAttempts
	}

	return err
}

// extractBody extracts the body from a message of the form
// "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
