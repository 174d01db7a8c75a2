package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/klaus-0-0/vault/internal/validators"
	"github.com/klaus-0-0/vault/models"
)

// VaultItemValidationService checks ownership and payload shape before
// delegating to the wrapped VaultItemService.
type VaultItemValidationService struct {
	inner     VaultItemService
	validator validators.Validator
}

func NewVaultItemValidationService() VaultItemServiceWrapper {
	return &VaultItemValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *VaultItemValidationService) List(ctx context.Context, userID int64) ([]models.StoredItem, error) {
	if userID <= 0 {
		return nil, ErrValidationNoUserID
	}

	return v.inner.List(ctx, userID)
}

func (v *VaultItemValidationService) Create(ctx context.Context, userID int64, req models.CreateItemRequest) (models.StoredItem, error) {
	if userID <= 0 {
		return models.StoredItem{}, ErrValidationNoUserID
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.StoredItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, userID, req)
}

func (v *VaultItemValidationService) Delete(ctx context.Context, userID int64, id string) error {
	if userID <= 0 {
		return ErrValidationNoUserID
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty item id", ErrInvalidDataProvided)
	}

	return v.inner.Delete(ctx, userID, id)
}

func (v *VaultItemValidationService) Wrap(inner VaultItemService) VaultItemService {
	v.inner = inner
	return v
}
