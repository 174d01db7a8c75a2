package service

import (
	"context"
	"fmt"

	"github.com/klaus-0-0/vault/internal/adapter"
	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/validators"
	"github.com/klaus-0-0/vault/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

// NewClientAuthService returns a ClientAuthService that validates requests
// locally before sending them through serverAdapter.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, validator: validator, logger: logger}
}

func (a *clientAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.Account, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resp, err := a.adapter.Signup(ctx, req)
	if err != nil {
		a.logger.Err(err).Msg("signup on server failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrSignupOnServer, mapAdapterError(err))
	}

	return accountFromResponse(resp, req.Email), nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		a.logger.Err(err).Msg("login on server failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return accountFromResponse(resp, req.Email), nil
}

// accountFromResponse takes the account id from the e-mail as normalised by
// the server, falling back to the requested one.
func accountFromResponse(resp models.AuthResponse, requestedEmail string) models.Account {
	accountID := resp.User.Email
	if accountID == "" {
		accountID = requestedEmail
	}

	return models.Account{AccountID: accountID, Username: resp.User.Username}
}
