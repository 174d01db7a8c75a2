// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/klaus-0-0/vault/internal/adapter"
	"github.com/klaus-0-0/vault/internal/crypto"
	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/validators"
	"github.com/klaus-0-0/vault/models"
)

// SessionState is the lifecycle state of a VaultSession.
type SessionState int

const (
	StateLocked SessionState = iota
	StateUnlocking
	StateUnlocked
)

func (s SessionState) String() string {
	switch s {
	case StateLocked:
		return "locked"
	case StateUnlocking:
		return "unlocking"
	case StateUnlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// VaultSession owns the master key and the decrypted item cache of one
// signed-in account.
//
// Round trips (Unlock, Refresh, CreateItem, DeleteItem) are serialised by
// opMu. In-memory state is guarded by mu, which is never held across
// network I/O or key derivation, so Lock never waits for a round trip. Every
// Lock bumps epoch; a round trip that observes a different epoch when it
// finishes discards its result and returns ErrNotUnlocked.
type VaultSession struct {
	opMu sync.Mutex

	mu          sync.RWMutex
	state       SessionState
	epoch       uint64
	key         crypto.MasterKey
	accountID   string
	itemsLoaded bool
	items       []models.DecryptedItem
	failed      []models.FailedItem

	deriver   crypto.KeyDeriver
	cipher    crypto.ItemCipher
	storage   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewVaultSession returns a locked session.
func NewVaultSession(
	deriver crypto.KeyDeriver,
	cipher crypto.ItemCipher,
	storage adapter.ServerAdapter,
	validator validators.Validator,
	logger *logger.Logger,
) *VaultSession {
	return &VaultSession{
		state:     StateLocked,
		deriver:   deriver,
		cipher:    cipher,
		storage:   storage,
		validator: validator,
		logger:    logger,
	}
}

// Unlock derives the master key from masterPassword and accountID, then
// loads and decrypts every stored item.
//
// A derivation failure leaves the session Locked and returns
// crypto.ErrInvalidInput. A storage failure during the load returns
// ErrStorage and leaves the session Unlocked with ItemsLoaded false. Items
// that fail to decrypt are reported in the result, never as an error; a
// wrong master password therefore shows up as every item failing.
func (s *VaultSession) Unlock(ctx context.Context, masterPassword, accountID string) (models.LoadResult, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.clearLocked()
	s.epoch++
	epoch := s.epoch
	s.state = StateUnlocking
	s.mu.Unlock()

	key, err := s.deriver.Derive(masterPassword, accountID)
	if err != nil {
		s.mu.Lock()
		if s.epoch == epoch {
			s.state = StateLocked
		}
		s.mu.Unlock()
		return models.LoadResult{}, fmt.Errorf("key derivation: %w", err)
	}

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		key.Zero()
		return models.LoadResult{}, ErrNotUnlocked
	}
	s.key = key
	s.accountID = accountID
	s.state = StateUnlocked
	s.mu.Unlock()

	s.logger.Info().Msg("vault unlocked")

	return s.load(ctx, epoch)
}

// Refresh reloads every item from storage.
func (s *VaultSession) Refresh(ctx context.Context) (models.LoadResult, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	epoch, err := s.currentEpoch()
	if err != nil {
		return models.LoadResult{}, err
	}

	return s.load(ctx, epoch)
}

// CreateItem validates and encrypts item, stores the blob and reloads the
// vault. It returns the server-assigned id. When the item was stored but the
// reload failed, the id is returned together with an ErrStorage error.
func (s *VaultSession) CreateItem(ctx context.Context, item models.VaultItem) (string, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	epoch, err := s.currentEpoch()
	if err != nil {
		return "", err
	}

	if err = s.validator.Validate(ctx, item); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}

	key, err := s.keySnapshot(epoch)
	if err != nil {
		return "", err
	}
	blob, err := s.cipher.Encrypt(item, key)
	key.Zero()
	if err != nil {
		return "", err
	}

	created, err := s.storage.CreateItem(ctx, blob)
	if err != nil {
		s.logger.Err(err).Msg("storing vault item failed")
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if _, err = s.load(ctx, epoch); err != nil {
		if errors.Is(err, ErrNotUnlocked) {
			return "", err
		}
		return created.ID, err
	}

	return created.ID, nil
}

// DeleteItem removes the item with id from storage and reloads the vault.
func (s *VaultSession) DeleteItem(ctx context.Context, id string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	epoch, err := s.currentEpoch()
	if err != nil {
		return err
	}

	if err = s.storage.DeleteItem(ctx, id); err != nil {
		s.logger.Err(err).Str("id", id).Msg("deleting vault item failed")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	_, err = s.load(ctx, epoch)
	return err
}

// Lock zeroes the master key and drops every decrypted item and failure
// record. It never fails and never waits for an in-flight round trip.
func (s *VaultSession) Lock() {
	s.mu.Lock()
	wasLocked := s.state == StateLocked
	s.clearLocked()
	s.epoch++
	s.state = StateLocked
	s.mu.Unlock()

	if !wasLocked {
		s.logger.Info().Msg("vault locked")
	}
}

// State returns the current lifecycle state.
func (s *VaultSession) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ItemsLoaded reports whether the cache reflects a successful load.
func (s *VaultSession) ItemsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemsLoaded
}

// AccountID returns the account the session was unlocked for, or "" when
// locked.
func (s *VaultSession) AccountID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountID
}

// Items returns a copy of the decrypted items, most recently updated first.
func (s *VaultSession) Items() []models.DecryptedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Failed returns a copy of the records that failed to decrypt on the last
// load.
func (s *VaultSession) Failed() []models.FailedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.failed)
}

// Search returns the cached items whose title, username, URL or notes
// contain query, case-insensitively, in cache order.
func (s *VaultSession) Search(query string) []models.DecryptedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]models.DecryptedItem, 0, len(s.items))
	for _, item := range s.items {
		if item.Item.Matches(query) {
			found = append(found, item)
		}
	}
	return found
}

// Item returns the cached item with id.
func (s *VaultSession) Item(id string) (models.DecryptedItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.DecryptedItem{}, false
}

// load fetches and decrypts every stored item and publishes the result if
// the session was not locked in the meantime.
func (s *VaultSession) load(ctx context.Context, epoch uint64) (models.LoadResult, error) {
	stored, err := s.storage.ListItems(ctx)
	if err != nil {
		s.logger.Err(err).Msg("loading vault items failed")

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.epoch != epoch {
			return models.LoadResult{}, ErrNotUnlocked
		}
		s.itemsLoaded = false
		s.items = nil
		s.failed = nil
		return models.LoadResult{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	key, err := s.keySnapshot(epoch)
	if err != nil {
		return models.LoadResult{}, err
	}
	result := s.decryptAll(stored, key)
	key.Zero()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return models.LoadResult{}, ErrNotUnlocked
	}
	s.items = result.Items
	s.failed = result.Failed
	s.itemsLoaded = true

	if result.HasFailures() {
		s.logger.Warn().
			Int("loaded", len(result.Items)).
			Int("failed", len(result.Failed)).
			Msg("some vault items could not be decrypted")
	}

	return models.LoadResult{
		Items:  slices.Clone(result.Items),
		Failed: slices.Clone(result.Failed),
	}, nil
}

func (s *VaultSession) decryptAll(stored []models.StoredItem, key crypto.MasterKey) models.LoadResult {
	result := models.LoadResult{
		Items: make([]models.DecryptedItem, 0, len(stored)),
	}

	for _, record := range stored {
		item, err := s.cipher.Decrypt(record.EncryptedData, key)
		if err != nil {
			result.Failed = append(result.Failed, models.FailedItem{ID: record.ID, Reason: err.Error()})
			continue
		}
		result.Items = append(result.Items, models.DecryptedItem{
			ID:        record.ID,
			Item:      item,
			UpdatedAt: record.UpdatedAt,
		})
	}

	return result
}

// currentEpoch returns the epoch of an unlocked session.
func (s *VaultSession) currentEpoch() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateUnlocked {
		return 0, ErrNotUnlocked
	}
	return s.epoch, nil
}

// keySnapshot returns a copy of the master key the caller must zero.
func (s *VaultSession) keySnapshot(epoch uint64) (crypto.MasterKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.epoch != epoch || s.state != StateUnlocked {
		return nil, ErrNotUnlocked
	}
	return s.key.Clone(), nil
}

// clearLocked drops all secrets. mu must be held for writing.
func (s *VaultSession) clearLocked() {
	s.key.Zero()
	s.key = nil
	s.accountID = ""
	s.items = nil
	s.failed = nil
	s.itemsLoaded = false
}
