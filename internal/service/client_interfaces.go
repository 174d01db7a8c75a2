package service

import (
	"context"

	"github.com/klaus-0-0/vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account signup and
// login. A successful call leaves the bearer token in the server adapter and
// returns the account whose AccountID feeds master-key derivation.
type ClientAuthService interface {
	// Signup creates an account on the server and signs in.
	Signup(ctx context.Context, req models.SignupRequest) (models.Account, error)

	// Login authenticates against the server.
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)
}
