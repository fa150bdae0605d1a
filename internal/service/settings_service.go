package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/settings"
)

// ISettingsStore persists per-user settings.
type ISettingsStore interface {
	Load(userID uuid.UUID) (settings.Settings, error)
	Save(userID uuid.UUID, s settings.Settings) error
}

type SettingsService struct {
	store ISettingsStore
}

func NewSettingsService(store ISettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the user's settings. Anonymous users get the defaults.
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) (settings.Settings, error) {
	if userID == uuid.Nil {
		return settings.Defaults(), nil
	}
	current, err := s.store.Load(userID)
	if err != nil {
		return settings.Settings{}, persistenceError(ctx, userID, "failed to load settings", err)
	}
	return current, nil
}

// Save replaces the user's settings wholesale.
func (s *SettingsService) Save(ctx context.Context, userID uuid.UUID, next settings.Settings) (settings.Settings, error) {
	if err := requireUser(userID); err != nil {
		return settings.Settings{}, err
	}
	if err := next.Validate(); err != nil {
		return settings.Settings{}, &ledger.ValidationError{Field: "settings", Message: err.Error()}
	}
	if err := s.store.Save(userID, next); err != nil {
		return settings.Settings{}, persistenceError(ctx, userID, "failed to save settings", err)
	}
	return next, nil
}

// UpdateNotification changes a single notification field and saves the
// result.
func (s *SettingsService) UpdateNotification(ctx context.Context, userID uuid.UUID, update settings.NotificationUpdate) (settings.Settings, error) {
	if err := requireUser(userID); err != nil {
		return settings.Settings{}, err
	}
	current, err := s.Get(ctx, userID)
	if err != nil {
		return settings.Settings{}, err
	}
	next, err := current.Apply(update)
	if err != nil {
		return settings.Settings{}, &ledger.ValidationError{Field: "notifications", Message: err.Error()}
	}
	return s.Save(ctx, userID, next)
}
