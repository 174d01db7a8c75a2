package service

import (
	"context"
	"fmt"
	"time"

	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/store"
	"github.com/klaus-0-0/vault/internal/utils"
	"github.com/klaus-0-0/vault/models"
)

// idGenerator produces identifiers for new records.
type idGenerator interface {
	Generate() string
}

type vaultItemService struct {
	repository store.VaultItemRepository
	ids        idGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewVaultItemService returns a VaultItemService that assigns UUIDv7 ids and
// UTC timestamps to new records.
func NewVaultItemService(repository store.VaultItemRepository, logger *logger.Logger) VaultItemService {
	return &vaultItemService{
		repository: repository,
		ids:        utils.NewUUIDGenerator(),
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (v *vaultItemService) List(ctx context.Context, userID int64) ([]models.StoredItem, error) {
	items, err := v.repository.ListItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing vault items: %w", err)
	}

	if items == nil {
		items = []models.StoredItem{}
	}
	return items, nil
}

func (v *vaultItemService) Create(ctx context.Context, userID int64, req models.CreateItemRequest) (models.StoredItem, error) {
	now := v.now()
	item := models.StoredItem{
		ID:            v.ids.Generate(),
		UserID:        userID,
		EncryptedData: req.EncryptedData,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := v.repository.CreateItem(ctx, item)
	if err != nil {
		return models.StoredItem{}, fmt.Errorf("creating vault item: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("id", created.ID).Int64("user_id", userID).Msg("vault item created")
	return created, nil
}

func (v *vaultItemService) Delete(ctx context.Context, userID int64, id string) error {
	if err := v.repository.DeleteItem(ctx, userID, id); err != nil {
		return fmt.Errorf("deleting vault item: %w", err)
	}

	return nil
}
