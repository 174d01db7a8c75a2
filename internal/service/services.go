package service

import (
	"fmt"

	"github.com/klaus-0-0/vault/internal/config"
	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/store"
)

// Services groups the server-side business services.
type Services struct {
	AuthService      AuthService
	VaultItemService VaultItemService
	AppInfoService   AppInfoService
}

// NewServices wires the server services over repositories. The vault item
// service is wrapped in validation.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	vaultItems := NewVaultItemValidationService().
		Wrap(NewVaultItemService(repositories.VaultItemRepository, logger))

	return &Services{
		AuthService:      NewAuthService(repositories.UserRepository, cfg.App, logger),
		VaultItemService: vaultItems,
		AppInfoService:   appInfo,
	}, nil
}
