package service

import (
	"fmt"

	"github.com/klaus-0-0/vault/internal/adapter"
	"github.com/klaus-0-0/vault/internal/config"
	"github.com/klaus-0-0/vault/internal/crypto"
	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/validators"
)

// ClientServices groups everything the client UI talks to.
type ClientServices struct {
	AuthService ClientAuthService
	Session     *VaultSession
	Generator   crypto.PasswordGenerator
}

// NewClientServices wires the client services over serverAdapter. The key
// derivation algorithm is taken from cfg.KDF.
func NewClientServices(serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) (*ClientServices, error) {
	deriver, err := crypto.NewKeyDeriver(cfg.KDF)
	if err != nil {
		return nil, fmt.Errorf("key deriver: %w", err)
	}

	validator := validators.NewVaultValidator()

	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, validator, logger),
		Session:     NewVaultSession(deriver, crypto.NewItemCipher(), serverAdapter, validator, logger),
		Generator:   crypto.NewPasswordGenerator(),
	}, nil
}
