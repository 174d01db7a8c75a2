package store

import (
	"context"
	"fmt"

	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/models"
)

const vaultItemsTable = "vault_items"

type vaultItemRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewVaultItemRepository(db *DB, logger *logger.Logger) VaultItemRepository {
	logger.Debug().Msg("creating vault item repository")
	return &vaultItemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *vaultItemRepository) ListItems(ctx context.Context, userID int64) ([]models.StoredItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "user_id", "encrypted_data", "created_at", "updated_at").
		From(vaultItemsTable).
		Where("user_id = ?", userID).
		OrderBy("updated_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var items []models.StoredItem
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		items = make([]models.StoredItem, 0)
		for rows.Next() {
			var item models.StoredItem
			if err = rows.Scan(&item.ID, &item.UserID, &item.EncryptedData, &item.CreatedAt, &item.UpdatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			items = append(items, item)
		}

		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error listing vault items")
		return nil, err
	}

	return items, nil
}

func (r *vaultItemRepository) CreateItem(ctx context.Context, item models.StoredItem) (models.StoredItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(vaultItemsTable).
		Columns("id", "user_id", "encrypted_data", "created_at", "updated_at").
		Values(item.ID, item.UserID, item.EncryptedData, item.CreatedAt, item.UpdatedAt).
		ToSql()
	if err != nil {
		return models.StoredItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Int64("user_id", item.UserID).Msg("error inserting vault item")
		return models.StoredItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.StoredItem{}, ErrItemNotSaved
	}

	return item, nil
}

func (r *vaultItemRepository) DeleteItem(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(vaultItemsTable).
		Where("id = ? AND user_id = ?", id, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("item_id", id).Msg("error deleting vault item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
