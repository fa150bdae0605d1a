package common

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// UserHeader carries the signed-in user's id.
const UserHeader = "X-User-ID"

// Identity is embedded in every input that acts on behalf of a user.
type Identity struct {
	UserID string `header:"X-User-ID" doc:"Signed-in user UUID, absent for anonymous requests"`
}

// User returns the caller's id, or uuid.Nil when the header is absent.
func (i Identity) User() (uuid.UUID, error) {
	if i.UserID == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.FromString(i.UserID)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+UserHeader+" header", err)
	}
	return id, nil
}

// ParseID parses a path id, failing with 400.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	return id, nil
}
