package store

import (
	"context"

	"github.com/klaus-0-0/vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores server accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns ErrEmailAlreadyExists when the e-mail is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered with email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// VaultItemRepository stores encrypted vault records. It never inspects
// EncryptedData.
type VaultItemRepository interface {
	// ListItems returns every record of userID, most recently updated first.
	ListItems(ctx context.Context, userID int64) ([]models.StoredItem, error)

	// CreateItem inserts item as given (ID and timestamps already set).
	CreateItem(ctx context.Context, item models.StoredItem) (models.StoredItem, error)

	// DeleteItem removes record id of userID or returns ErrItemNotFound.
	DeleteItem(ctx context.Context, userID int64, id string) error
}
