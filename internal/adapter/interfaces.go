// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Only encrypted blobs cross this boundary: the adapter never sees a
// plaintext item or a master key.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/klaus-0-0/vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Signup registers a new account. On success the returned token is
	// stored via SetToken.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)

	// Login authenticates an existing account. On success the returned token
	// is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// ListItems returns every stored item of the authenticated account,
	// most recently updated first.
	ListItems(ctx context.Context) ([]models.StoredItem, error)

	// CreateItem stores blob and returns the stored item with its
	// server-assigned id.
	CreateItem(ctx context.Context, blob models.EncryptedBlob) (models.StoredItem, error)

	// DeleteItem removes the item with the given id. Returns [ErrNotFound]
	// (wrapped) if the server does not know it.
	DeleteItem(ctx context.Context, id string) error
}
