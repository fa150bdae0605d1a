package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	log "github.com/sirupsen/logrus"

	"github.com/carson-networks/wallet-server/internal/ledger"
)

var (
	ErrUnauthenticated = errors.New("sign in required")
	ErrNotFound        = errors.New("not found")
)

// ConfirmationRequiredError is returned when a destructive action was asked
// for without the user confirming the prompt first.
type ConfirmationRequiredError struct {
	Confirmation ledger.Confirmation
}

func (e *ConfirmationRequiredError) Error() string {
	return e.Confirmation.Message
}

// PersistenceError carries the user-facing message for a failed round-trip.
// The session state was not changed.
type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceError(ctx context.Context, userID uuid.UUID, message string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	log.WithContext(ctx).WithError(err).WithField("userID", userID.String()).Error(message)
	return &PersistenceError{Message: message, Err: err}
}

func requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}
	return nil
}
