package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/wallet-server/internal/ledger"
	"github.com/carson-networks/wallet-server/internal/operator/actions"
	"github.com/carson-networks/wallet-server/internal/storage"
)

// ProfileUpdate holds the editable profile fields.
type ProfileUpdate struct {
	Username  string
	FullName  string
	AvatarURL string
	Website   string
}

type ProfileService struct {
	storage  *storage.Storage
	operator IOperator
	now      func() time.Time
}

func NewProfileService(store *storage.Storage, operator IOperator, now func() time.Time) *ProfileService {
	return &ProfileService{storage: store, operator: operator, now: now}
}

// GetProfile returns the user's profile, or nil when none was saved yet.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*ledger.Profile, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	p, err := s.storage.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, persistenceError(ctx, userID, "failed to load profile", err)
	}
	return p, nil
}

func (s *ProfileService) SaveProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (ledger.Profile, error) {
	if err := requireUser(userID); err != nil {
		return ledger.Profile{}, err
	}

	p := ledger.Profile{
		ID:        userID,
		Username:  strings.TrimSpace(update.Username),
		FullName:  strings.TrimSpace(update.FullName),
		AvatarURL: strings.TrimSpace(update.AvatarURL),
		Website:   strings.TrimSpace(update.Website),
		UpdatedAt: s.now().UTC(),
	}

	if err := s.operator.Process(ctx, &actions.SaveProfile{Profile: p}); err != nil {
		return ledger.Profile{}, persistenceError(ctx, userID, "failed to save profile", err)
	}
	return p, nil
}
