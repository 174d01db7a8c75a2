package store

import "github.com/klaus-0-0/vault/internal/logger"

// Repositories aggregates every repository backed by one DB.
type Repositories struct {
	UserRepository      UserRepository
	VaultItemRepository VaultItemRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db, log),
		VaultItemRepository: NewVaultItemRepository(db, log),
	}
}
