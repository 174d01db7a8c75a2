package tui

import (
	"context"
	"time"

	"github.com/klaus-0-0/vault/internal/service"
	"github.com/klaus-0-0/vault/models"
)

// Session is the vault session as the screens use it.
type Session interface {
	Unlock(ctx context.Context, masterPassword, accountID string) (models.LoadResult, error)
	Refresh(ctx context.Context) (models.LoadResult, error)
	CreateItem(ctx context.Context, item models.VaultItem) (string, error)
	DeleteItem(ctx context.Context, id string) error
	Lock()

	State() service.SessionState
	Failed() []models.FailedItem
	Search(query string) []models.DecryptedItem
	Item(id string) (models.DecryptedItem, bool)
}

// Clipboard copies secrets and wipes them again.
type Clipboard interface {
	Copy(value string) error
	Clear()
	TTL() time.Duration
}

// ActivityTracker is told about every key press so idle auto-lock can be
// postponed.
type ActivityTracker interface {
	Touch()
}
