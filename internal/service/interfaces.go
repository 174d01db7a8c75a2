package service

import (
	"context"

	"github.com/klaus-0-0/vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates server accounts and issues
// bearer tokens.
type AuthService interface {
	// Signup creates an account with a bcrypt-hashed password.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	// Login checks the credentials and returns the stored account.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultItemService stores opaque encrypted records on behalf of a user.
// It never inspects EncryptedData.
type VaultItemService interface {
	List(ctx context.Context, userID int64) ([]models.StoredItem, error)
	Create(ctx context.Context, userID int64, req models.CreateItemRequest) (models.StoredItem, error)
	Delete(ctx context.Context, userID int64, id string) error
}

// AppInfoService reports build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// VaultItemServiceWrapper defines middleware composition for
// VaultItemService. Implementations wrap an existing VaultItemService to add
// behavior such as validation.
type VaultItemServiceWrapper interface {
	Wrap(VaultItemService) VaultItemService
}
